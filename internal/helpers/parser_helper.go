package helpers

import "strconv"

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

func StringToUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint(v), err
}

func StringToFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
