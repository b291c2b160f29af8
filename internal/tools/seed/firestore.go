package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	platformgrpc "github.com/ascendlifequest/questseed/internal/platform/grpc"
	"github.com/ascendlifequest/questseed/internal/quest"
	"google.golang.org/api/option"
)

// DefaultDatabaseID names the project's default Firestore database.
const DefaultDatabaseID = firestore.DefaultDatabaseID

// FirestoreConfig selects the Firestore project and database to seed.
type FirestoreConfig struct {
	ProjectID       string `env:"PROJECT_ID"`
	DatabaseID      string `env:"DATABASE_ID" envDefault:"(default)"`
	CredentialsFile string `env:"CREDENTIALS_FILE"`
	EmulatorHost    string `env:"EMULATOR_HOST"`
}

// FirestoreWriter writes documents with the Firestore client.
type FirestoreWriter struct {
	client *firestore.Client
}

// OpenFirestore connects to Firestore. The default database goes through the
// Firebase Admin app so that project discovery from credentials works; named
// databases need the Firestore client directly.
func OpenFirestore(ctx context.Context, cfg FirestoreConfig) (*FirestoreWriter, error) {
	projectID := strings.TrimSpace(cfg.ProjectID)
	databaseID := strings.TrimSpace(cfg.DatabaseID)
	if databaseID == "" {
		databaseID = DefaultDatabaseID
	}

	if host := strings.TrimSpace(cfg.EmulatorHost); host != "" {
		if err := os.Setenv(EmulatorHostEnv, resolveEmulatorHost(ctx, host)); err != nil {
			return nil, fmt.Errorf("set emulator host: %w", err)
		}
	}

	var opts []option.ClientOption
	for _, dialOpt := range platformgrpc.ClientDialOptions() {
		opts = append(opts, option.WithGRPCDialOption(dialOpt))
	}
	if path := strings.TrimSpace(cfg.CredentialsFile); path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	var (
		client *firestore.Client
		err    error
	)
	if databaseID == DefaultDatabaseID {
		var app *firebase.App
		app, err = firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
		if err != nil {
			return nil, fmt.Errorf("init firebase app: %w", err)
		}
		client, err = app.Firestore(ctx)
	} else {
		if projectID == "" {
			return nil, fmt.Errorf("project id is required for database %q", databaseID)
		}
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("open firestore client: %w", err)
	}
	return &FirestoreWriter{client: client}, nil
}

// SetDocument replaces the document at doc's path with its fields.
func (w *FirestoreWriter) SetDocument(ctx context.Context, doc quest.Document) error {
	if w == nil || w.client == nil {
		return fmt.Errorf("firestore client is not configured")
	}
	if _, err := w.client.Collection(doc.Collection).Doc(doc.ID).Set(ctx, doc.Fields); err != nil {
		return fmt.Errorf("set %s: %w", doc.Path(), err)
	}
	return nil
}

// Close releases the Firestore client.
func (w *FirestoreWriter) Close() error {
	if w == nil || w.client == nil {
		return nil
	}
	return w.client.Close()
}

var _ DocumentWriter = (*FirestoreWriter)(nil)
