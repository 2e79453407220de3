//go:build !android

package utils

// EnsureStorageDir 确保设置存储目录存在
// 非 Android 平台由 gdata 自行创建目录
func EnsureStorageDir(appName string) error {
	return nil
}

// GetStoragePath 非 Android 平台返回空字符串（路径由 gdata 决定）
func GetStoragePath(appName string) string {
	return ""
}
