package matcher

// SignalModeMatched 实际的失败报告方式是否与期望一致
//
// 与消息内容是否匹配相互独立：期望严格模式但规则只记录了消息，
// 或未期望严格模式但规则返回了严格失败，都视为不一致，
// 即使消息文本恰好相同。
func SignalModeMatched(expectsStrict, capturedStrict bool) bool {
	return expectsStrict == capturedStrict
}
