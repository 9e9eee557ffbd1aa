package models

// FlashcardSession is one bounded study run through a batch of words.
// The word list is a snapshot fixed at creation time; the cursor
// advances by one per graded answer.
type FlashcardSession struct {
	SessionID    string             `json:"sessionId"`
	Words        []WordWithProgress `json:"words"`
	CurrentIndex int                `json:"currentIndex"`
	TotalWords   int                `json:"totalWords"`
}

// Current returns the word at the cursor, or nil if the session is
// empty or exhausted.
func (s *FlashcardSession) Current() *WordWithProgress {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Words) {
		return nil
	}
	return &s.Words[s.CurrentIndex]
}

// Completed reports whether every word in the session has been answered.
func (s *FlashcardSession) Completed() bool {
	return s.CurrentIndex >= s.TotalWords
}
