package provider

// Text возвращает текст ответа провайдера: исходный, если он сохранен,
// иначе восстановленный по варианту.
func Text(r Response) string {
	switch v := r.(type) {
	case Balance:
		if v.Raw != "" {
			return v.Raw
		}
		return prefixBalance + v.Amount
	case NumberAllocated:
		if v.Raw != "" {
			return v.Raw
		}
		return prefixNumber + v.ID + ":" + v.Number
	case StatusOK:
		return prefixStatusOK + v.SMS
	case Cancel:
		return tokenCancel
	case Ready:
		if v.Raw != "" {
			return v.Raw
		}
		return tokenReady
	case RetryGet:
		if v.Raw != "" {
			return v.Raw
		}
		return tokenRetryGet
	case Opaque:
		return v.Text
	}
	return ""
}
