// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// authCommand handles account and session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage your account and session",
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Display name for the new account",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Password (at least 6 characters)",
						Required: true,
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:  "login",
				Usage: "Log in and persist the session token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "End the session and clear the stored token",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the current session state",
				Action: r.AuthStatus,
			},
			{
				Name:  "reset",
				Usage: "Request a password reset email",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Email address",
						Required: true,
					},
				},
				Action: r.AuthReset,
			},
		},
	}
}

// collectionCommand handles collection operations
func collectionCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "collection",
		Aliases: []string{"col"},
		Usage:   "Manage collections",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List your collections",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CollectionList,
			},
			{
				Name:  "show",
				Usage: "Show a collection and its games",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Collection ID",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.CollectionShow,
			},
			{
				Name:  "create",
				Usage: "Create a new collection",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: r.CollectionCreate,
			},
			{
				Name:  "rename",
				Usage: "Rename a collection",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Collection ID",
						Required: true,
					},
				},
				Action: r.CollectionRename,
			},
			{
				Name:    "delete",
				Aliases: []string{"rm"},
				Usage:   "Delete a collection and everything in it",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Collection ID",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "yes",
						Usage: "Skip the confirmation prompt",
					},
				},
				Action: r.CollectionDelete,
			},
			{
				Name:  "export",
				Usage: "Export collections to files",
				Flags: []cli.Flag{
					&cli.IntSliceFlag{
						Name:  "id",
						Usage: "Collection ID to export (repeatable, default: all)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: json, csv, markdown, txt",
						Value:   "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output directory",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent export workers",
						Value: 5,
					},
				},
				Action: r.CollectionExport,
			},
		},
	}
}

// gameCommand handles per-game operations
func gameCommand(r *Runner) *cli.Command {
	gameFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Usage: "Game title",
		},
		&cli.StringFlag{
			Name:  "platform",
			Usage: "Platform the copy runs on",
		},
		&cli.IntFlag{
			Name:  "year",
			Usage: "Release year",
		},
		&cli.FloatFlag{
			Name:  "value",
			Usage: "Estimated value",
		},
		&cli.StringFlag{
			Name:  "upc",
			Usage: "UPC barcode",
		},
		&cli.StringFlag{
			Name:  "ean",
			Usage: "EAN barcode",
		},
		&cli.StringFlag{
			Name:  "description",
			Usage: "Free-form notes",
		},
		&cli.StringFlag{
			Name:  "image-url",
			Usage: "Cover art URL",
		},
		&cli.IntFlag{
			Name:  "collection-id",
			Usage: "Collection the game belongs to",
		},
	}

	return &cli.Command{
		Name:  "game",
		Usage: "Manage games inside collections",
		Commands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Add a game to a collection",
				Flags:  gameFlags,
				Action: r.GameAdd,
			},
			{
				Name:  "update",
				Usage: "Update a game's details",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Game ID",
						Required: true,
					},
				}, gameFlags...),
				Action: r.GameUpdate,
			},
			{
				Name:    "remove",
				Aliases: []string{"rm"},
				Usage:   "Remove a game from its collection",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Game ID",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "yes",
						Usage: "Skip the confirmation prompt",
					},
				},
				Action: r.GameRemove,
			},
			{
				Name:  "cover",
				Usage: "Open cover art in the browser",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "url"},
				},
				Action: r.GameCover,
			},
		},
	}
}

// searchCommand queries the IGDB search proxy
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the game database",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Search,
	}
}

// scanCommand records and resolves barcode scans
func scanCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "scan",
		Usage: "Record a barcode scan and look it up",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "code"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "symbology",
				Usage: "Barcode format (upc or ean)",
				Value: "upc",
			},
		},
		Action: r.Scan,
		Commands: []*cli.Command{
			{
				Name:  "history",
				Usage: "List recorded scans, newest first",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.StringFlag{
						Name:  "code",
						Usage: "Only show scans of this barcode",
					},
				},
				Action: r.ScanHistory,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and the local database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the local cache database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// apiCommand handles direct calls against the catalog backend
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls to the catalog backend",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive collection management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive collection browser",
		Action:  r.TUI,
	}
}
