package domain

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable means the vector store handle is absent or the
// store cannot be reached. Terminal for the request: callers answer with
// a fixed apology and never contact the generation API.
var ErrStoreUnavailable = errors.New("vector store unavailable")

// MalformedChunkIDError reports a chunk id that does not follow the
// <prefix>_<sequence> convention. Unlike every other pipeline failure it
// is not converted into chat text: it signals corrupted ingestion and
// must surface to operators.
type MalformedChunkIDError struct {
	ID string
}

func (e *MalformedChunkIDError) Error() string {
	return fmt.Sprintf("malformed chunk id %q: want <prefix>_<sequence>", e.ID)
}
