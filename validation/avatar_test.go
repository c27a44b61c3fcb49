package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAvatar_SizeAndFormat(t *testing.T) {
	tests := []struct {
		name     string
		file     FileUpload
		wantMsgs []string
	}{
		{
			"valid browser upload",
			FileUpload{Size: 1024, Type: "image/png"},
			nil,
		},
		{
			"valid relay upload",
			FileUpload{Size: MaxAvatarBytes, Mimetype: "image/webp"},
			nil,
		},
		{
			"jpg alias accepted",
			FileUpload{Size: 1024, Type: "image/jpg"},
			nil,
		},
		{
			"oversized with valid type fails on size only",
			FileUpload{Size: MaxAvatarBytes + 1, Type: "image/jpeg"},
			[]string{MsgAvatarTooBig},
		},
		{
			"gif at the size limit fails on format only",
			FileUpload{Size: MaxAvatarBytes, Mimetype: "image/gif"},
			[]string{MsgAvatarBadFormat},
		},
		{
			"oversized gif reports both issues",
			FileUpload{Size: MaxAvatarBytes + 1, Type: "image/gif"},
			[]string{MsgAvatarTooBig, MsgAvatarBadFormat},
		},
		{
			"no type information at all",
			FileUpload{Size: 1024},
			[]string{MsgAvatarBadFormat},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			issues := Avatar("avatar", tt.file)
			req.Len(issues, len(tt.wantMsgs))
			for i, msg := range tt.wantMsgs {
				req.Equal("avatar", issues[i].Path)
				req.Equal(msg, issues[i].Message)
			}
		})
	}
}

func TestAvatar_SizeIssueIsFatal(t *testing.T) {
	req := require.New(t)
	issues := Avatar("avatar", FileUpload{Size: MaxAvatarBytes + 1, Type: "image/gif"})
	req.Len(issues, 2)
	req.True(issues[0].Fatal)
	req.False(issues[1].Fatal)
}

func TestAvatar_EitherMetadataFieldSatisfiesFormat(t *testing.T) {
	req := require.New(t)

	// Browser style: type set, mimetype empty.
	req.Empty(Avatar("avatar", FileUpload{Size: 1, Type: "image/jpeg"}))
	// Relay style: mimetype set, type empty.
	req.Empty(Avatar("avatar", FileUpload{Size: 1, Mimetype: "image/jpeg"}))
	// A present-but-unsupported field is not rescued by the other being empty.
	req.Len(Avatar("avatar", FileUpload{Size: 1, Type: "image/gif"}), 1)
}

func TestAvatar_SniffsContentWhenMetadataMissing(t *testing.T) {
	req := require.New(t)
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

	req.Empty(Avatar("avatar", FileUpload{Size: int64(len(pngMagic)), Content: pngMagic}))

	text := []byte("definitely not an image")
	issues := Avatar("avatar", FileUpload{Size: int64(len(text)), Content: text})
	req.Len(issues, 1)
	req.Equal(MsgAvatarBadFormat, issues[0].Message)
}
