package validation

import (
	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
)

// MaxAvatarBytes is the upper bound on an uploaded avatar image.
const MaxAvatarBytes = 8_000_000

// SupportedImageFormats is the closed set of avatar content types. The
// image/jpg alias stays in the list because browsers still send it.
var SupportedImageFormats = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/webp",
}

const (
	MsgAvatarTooBig    = "The image size cannot exceed 8MB."
	MsgAvatarBadFormat = "The image format is not supported. Please upload a JPEG, JPG, PNG, or WebP image."
)

// FileUpload is the loosely-typed file value an avatar arrives as. A
// browser upload reports the content type in Type, a multipart relay in
// Mimetype; either (or both) may be empty. Content is optional raw bytes
// used only to sniff the type when both metadata fields are missing.
type FileUpload struct {
	Size     int64
	Type     string
	Mimetype string
	Content  []byte
}

// Avatar validates an uploaded avatar file. The size and format checks are
// independent and both always run, so one oversized GIF reports two issues.
// The size issue is fatal: anything downstream of this field must not look
// at the content.
func Avatar(path string, f FileUpload) Issues {
	var issues Issues
	if f.Size > MaxAvatarBytes {
		issues = append(issues, Issue{Path: path, Message: MsgAvatarTooBig, Fatal: true})
	}
	if !avatarFormatOK(f) {
		issues.Add(path, MsgAvatarBadFormat)
	}
	return issues
}

func avatarFormatOK(f FileUpload) bool {
	if f.Type != "" || f.Mimetype != "" {
		// Both origins must be checked: the same logical field arrives
		// under a different name depending on who uploaded it.
		return lo.Contains(SupportedImageFormats, f.Type) ||
			lo.Contains(SupportedImageFormats, f.Mimetype)
	}
	if len(f.Content) > 0 {
		detected := mimetype.Detect(f.Content).String()
		return lo.Contains(SupportedImageFormats, detected)
	}
	return false
}
