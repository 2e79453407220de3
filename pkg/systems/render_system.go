package systems

import (
	"image"
	"sort"

	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 在镜头空间中绘制所有精灵
// 绘制顺序按 Z 升序（Z 相同时按实体ID），图片以实体位置为中心
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// drawable 一次绘制所需的数据
type drawable struct {
	id    ecs.EntityID
	z     float64
	x, y  float64
	image *ebiten.Image
	scale float64
}

// Draw 绘制所有带位置和图像的实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	cam := ActiveCamera(s.entityManager)
	camScale := cameraScale(cam)

	for _, d := range s.collect() {
		w := float64(d.image.Bounds().Dx())
		h := float64(d.image.Bounds().Dy())
		sx, sy := WorldToScreen(cam, d.x, d.y, bounds.Dx(), bounds.Dy())

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Scale(d.scale*camScale, d.scale*camScale)
		op.GeoM.Translate(sx, sy)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(d.image, op)
	}
}

// collect 收集并排序本帧需要绘制的实体
func (s *RenderSystem) collect() []drawable {
	var list []drawable

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteSheetComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sheet, _ := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)
		img := SheetCell(sheet)
		if img == nil {
			continue
		}
		list = append(list, drawable{id: id, z: pos.Z, x: pos.X, y: pos.Y, image: img, scale: normalizeScale(sheet.Scale)})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if sprite.Image == nil {
			continue
		}
		list = append(list, drawable{id: id, z: pos.Z, x: pos.X, y: pos.Y, image: sprite.Image, scale: normalizeScale(sprite.Scale)})
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].z != list[j].z {
			return list[i].z < list[j].z
		}
		return list[i].id < list[j].id
	})
	return list
}

// SheetCell 返回精灵图当前格子的子图
// 格子按行优先编号；图片为空或格子越界时返回 nil
func SheetCell(sheet *components.SpriteSheetComponent) *ebiten.Image {
	rect, ok := SheetCellRect(sheet)
	if !ok {
		return nil
	}
	return sheet.Image.SubImage(rect).(*ebiten.Image)
}

// SheetCellRect 计算当前格子在精灵图中的像素区域
func SheetCellRect(sheet *components.SpriteSheetComponent) (image.Rectangle, bool) {
	if sheet.Image == nil || sheet.Columns <= 0 || sheet.CellWidth <= 0 || sheet.CellHeight <= 0 || sheet.Index < 0 {
		return image.Rectangle{}, false
	}
	col := sheet.Index % sheet.Columns
	row := sheet.Index / sheet.Columns
	rect := image.Rect(
		col*sheet.CellWidth,
		row*sheet.CellHeight,
		(col+1)*sheet.CellWidth,
		(row+1)*sheet.CellHeight,
	)
	if !rect.In(sheet.Image.Bounds()) {
		return image.Rectangle{}, false
	}
	return rect, true
}

func normalizeScale(scale float64) float64 {
	if scale <= 0 {
		return 1
	}
	return scale
}
