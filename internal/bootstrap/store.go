package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/domain"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/repository"
)

type StoreOptions struct {
	Host       string
	Port       int
	Collection string
	ConnectTO  time.Duration
}

// OpenCollection connects to Chroma and resolves the chatbot collection
// handle once for the process lifetime. Callers may start degraded on
// error: a nil collection makes the chatbot answer with its fixed
// apology rather than refuse to boot.
func OpenCollection(ctx context.Context, opt StoreOptions, embed domain.EmbedFunc) (*repository.Collection, error) {
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 5 * time.Second
	}

	client := repository.NewChromaClient(fmt.Sprintf("http://%s:%d", opt.Host, opt.Port))

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	id, err := client.Collection(cctx, opt.Collection)
	if err != nil {
		return nil, fmt.Errorf("chroma collection: %w", err)
	}

	return repository.NewCollection(client, id, embed), nil
}
