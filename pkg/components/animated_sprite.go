package components

// AnimatedSpriteComponent 帧计数动画
// CurrentFrame 只增不减，取模在查表时进行（见 PlayerAnimationSystem）
type AnimatedSpriteComponent struct {
	CurrentFrame uint64 // 已前进的帧数
	Timer        Timer  // 帧间隔计时器（重复）
}
