package config

// Specification of manifest caption source.
// ENUM(filename, slug, none)
type CaptionMode int

// Specification of mobile copy output format.
// ENUM(png, jpeg)
type MobileFormat int

func (f MobileFormat) Ext() string {
	switch f {
	case MobileFormatPng:
		return "png"
	case MobileFormatJpeg:
		return "jpg"
	default:
		// this should never happen
		panic("unsupported mobile format requested")
	}
}

// Specification of source name ordering.
// ENUM(lexical, natural)
type SortOrder int
