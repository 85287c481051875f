package gallery

import "errors"

var ErrModalClosed = errors.New("modal is closed")

type ModalState struct {
	Open      bool    `json:"open"`
	VideoURL  string  `json:"videoUrl,omitempty"`
	PosterURL string  `json:"posterUrl,omitempty"`
	Playing   bool    `json:"playing"`
	Position  float64 `json:"position"`
}

// Modal is the playback overlay. It only changes through Open, Close and
// Seek.
type Modal struct {
	state ModalState
}

func (m *Modal) Open(videoURL, posterURL string) {
	m.state = ModalState{
		Open:      true,
		VideoURL:  videoURL,
		PosterURL: posterURL,
		Playing:   true,
	}
}

// Close pauses, rewinds and hides the player.
func (m *Modal) Close() {
	m.state = ModalState{}
}

// Seek records the player's current position in seconds.
func (m *Modal) Seek(pos float64) error {
	if !m.state.Open {
		return ErrModalClosed
	}
	if pos < 0 {
		pos = 0
	}
	m.state.Position = pos
	return nil
}

func (m *Modal) State() ModalState {
	return m.state
}
