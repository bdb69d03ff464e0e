package utils

// NextPrime - Returns the smallest prime number that is greater than or equal to n.
// Any n lower than 2 gives 2.
func NextPrime(n int64) int64 {
	if n < 2 {
		return 2
	}

	for !IsPrime(n) {
		n++
	}

	return n
}

// IsPrime - Returns true if n is a prime number, using trial division up to the square root of n
func IsPrime(n int64) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n <= 1 || n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// Percent - Returns part as a percentage of whole, or 0 if whole is not positive
func Percent(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}

	return float64(part) / float64(whole) * 100
}
