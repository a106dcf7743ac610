package domain

// ImageExtensions is the allow-list of file extensions (without dot) accepted
// for upload. The value is the canonical MIME type used when the client and
// the platform MIME tables both fail to resolve one.
var ImageExtensions = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"webp": "image/webp",
	"tiff": "image/tiff",
}

// IsImageContentType reports whether mt identifies image data.
func IsImageContentType(mt string) bool {
	return len(mt) > 6 && mt[:6] == "image/"
}
