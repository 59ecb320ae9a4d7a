package markup

import "github.com/google/uuid"

// NewAudioBlock returns an Audio block with a freshly minted file ID, the
// shape the editor inserts when a recording starts. Temporary recordings
// are re-serialized with temporary="true" until upload completes.
func NewAudioBlock(temporary bool) *Audio {
	return &Audio{FileID: uuid.NewString(), Temporary: temporary}
}

// NewImageBlock returns an Image block referencing a new local attachment.
// Width and height of zero are left unset.
func NewImageBlock(width, height int, description string) *Image {
	return &Image{
		FileID:      uuid.NewString(),
		Width:       width,
		Height:      height,
		Description: description,
	}
}
