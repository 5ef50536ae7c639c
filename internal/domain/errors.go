package domain

import "errors"

// Sentinel errors for catalog generation. All of them are fatal once the
// bounded retry budgets are exhausted: no partial document is ever written.
var (
	// ErrNameVocabularyMismatch means a generated name contains no vocabulary
	// token of its declared subtype or category. After retries this indicates
	// a lexicon/logic inconsistency, not bad luck.
	ErrNameVocabularyMismatch = errors.New("item name missing required vocabulary token")

	// ErrNameExhausted means the collision retry budget ran out before a
	// unique name was found.
	ErrNameExhausted = errors.New("unable to generate unique item name")

	// ErrDuplicateID means two items in the same document slugified to the
	// same id.
	ErrDuplicateID = errors.New("duplicate item id in document")
)
