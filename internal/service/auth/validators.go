package auth

const pinLength = 4

func isValidPINFormat(pin string) bool {
	if len(pin) != pinLength {
		return false
	}
	for i := range len(pin) {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}
