package blend

// mulDiv255 multiplies two byte values and divides by 255 with rounding.
// Formula: (a * b + 127) / 255
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// MulDiv255 is the exported form of mulDiv255 for callers that scale a
// premultiplied color by a coverage value.
func MulDiv255(a, b byte) byte {
	return mulDiv255(a, b)
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// lerp interpolates from a to b by t/255 with rounding.
func lerp(a, b, t byte) byte {
	v := int(a)*(255-int(t)) + int(b)*int(t)
	return byte((v + 127) / 255)
}
