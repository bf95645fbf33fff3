package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxRunner executes a function inside one atomic transaction boundary. The
// context handed to fn must be used for every store operation inside the
// unit so that reads and writes share the same session.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SessionRunner runs transactions on a MongoDB client session.
type SessionRunner struct {
	Client *mongo.Client
}

// NewSessionRunner returns a TxRunner backed by the given client.
func NewSessionRunner(client *mongo.Client) *SessionRunner {
	return &SessionRunner{Client: client}
}

// WithTransaction starts a session, runs fn inside a transaction and commits.
// Any error from fn aborts the whole unit; no partial writes survive.
func (r *SessionRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	sess, err := r.Client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
