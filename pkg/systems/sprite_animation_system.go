package systems

import (
	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/ecs"
)

// SpriteAnimationSystem 推进所有帧计数动画
// 计时器每完成一个周期，CurrentFrame 加一；帧号不设上限
type SpriteAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewSpriteAnimationSystem 创建帧计数动画系统
func NewSpriteAnimationSystem(em *ecs.EntityManager) *SpriteAnimationSystem {
	return &SpriteAnimationSystem{entityManager: em}
}

// Update 推进动画计时器
func (s *SpriteAnimationSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.AnimatedSpriteComponent](s.entityManager) {
		anim, _ := ecs.GetComponent[*components.AnimatedSpriteComponent](s.entityManager, id)
		if cycles := anim.Timer.Tick(deltaTime); cycles > 0 {
			anim.CurrentFrame += uint64(cycles)
		}
	}
}
