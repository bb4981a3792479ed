package model

// InputFile is a media file selected for the batch.
// Streams keep probe order; the per-kind position of each stream is what
// ffmpeg stream specifiers refer to.
type InputFile struct {
	Path    string
	Size    int64 // 0 if unknown
	Streams []Stream
}

// Contains reports whether the file carries a stream equal to s.
func (f InputFile) Contains(s Stream) bool {
	for _, own := range f.Streams {
		if own.Equal(s) {
			return true
		}
	}
	return false
}
