package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Nickname string  `json:"nickname" validate:"required"`
	Lastname *string `json:"lastname,omitempty" validate:"omitempty,personname"`
	Website  *string `json:"website,omitempty" validate:"omitempty,url"`
}

func TestStruct_PathsUseJSONNames(t *testing.T) {
	req := require.New(t)

	bad := "Dupont2"
	issues := Struct(sampleRequest{Nickname: "ok", Lastname: &bad})
	req.Len(issues, 1)
	req.Equal("lastname", issues[0].Path)
	req.Equal(MsgNameInvalid, issues[0].Message)
}

func TestStruct_PersonNameTagAllowsBlank(t *testing.T) {
	req := require.New(t)
	blank := "   "
	req.Empty(Struct(sampleRequest{Nickname: "ok", Lastname: &blank}))
}

func TestStruct_CollectsEveryFieldError(t *testing.T) {
	req := require.New(t)

	badName := "x-"
	badURL := "not a url"
	issues := Struct(sampleRequest{Lastname: &badName, Website: &badURL})
	req.Len(issues, 3)

	paths := []string{issues[0].Path, issues[1].Path, issues[2].Path}
	req.Contains(paths, "nickname")
	req.Contains(paths, "lastname")
	req.Contains(paths, "website")
}

func TestStruct_ValidValue(t *testing.T) {
	req := require.New(t)
	last := "Jean-Pierre"
	site := "https://example.com/a.png"
	req.Empty(Struct(sampleRequest{Nickname: "alice", Lastname: &last, Website: &site}))
}
