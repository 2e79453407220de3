// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// Init() 之后，以 "assets/" 或 "data/" 开头的路径从嵌入资源读取；
// 其他路径，以及 Init() 之前的所有路径（命令行工具、测试），直接从磁盘读取。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// Init 初始化嵌入文件系统
// 必须在 main() 开始时、任何资源加载之前调用
// 参数使用 fs.FS，测试中可以传入 fstest.MapFS
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// IsEmbeddedPath 判断路径是否指向嵌入资源
func IsEmbeddedPath(path string) bool {
	path = normalize(path)
	return strings.HasPrefix(path, "assets/") || strings.HasPrefix(path, "data/")
}

// Open 根据路径前缀选择正确的文件系统并打开文件
// 未调用 Init 时（命令行工具、测试）所有路径都从磁盘读取
func Open(path string) (fs.File, error) {
	if !initialized || !IsEmbeddedPath(path) {
		return os.Open(path)
	}

	fsys, err := selectFS(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(normalize(path))
}

// ReadFile 根据路径前缀选择正确的文件系统并读取文件内容
func ReadFile(path string) ([]byte, error) {
	if !initialized || !IsEmbeddedPath(path) {
		return os.ReadFile(path)
	}

	fsys, err := selectFS(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, normalize(path))
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// selectFS 按路径前缀返回 assets 或 data 文件系统
func selectFS(path string) (fs.FS, error) {
	path = normalize(path)
	if strings.HasPrefix(path, "assets/") {
		return assetsFS, nil
	}
	if strings.HasPrefix(path, "data/") {
		return dataFS, nil
	}
	return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// normalize 标准化路径分隔符为正斜杠，并移除 "./" 前缀（embed.FS 使用正斜杠）
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}
