// Package application provides the application interface for menumap commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            ds, err := app.Dataset()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use ds
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    DatasetFunc: func() (*menus.Dataset, error) {
//	        return testDataset, nil
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/menumap/pkg/menus"
)

// Application provides the application interface that commands need.
// The App struct from cmd/menumap/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Dataset returns the loaded dataset. It is read from the configured
	// data path on first use and never reloaded. A load failure is an
	// *errors.StartupError.
	Dataset() (*menus.Dataset, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
