// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/wallkit"
	"github.com/poiesic/wallkit/core"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "wallkit",
		Usage: "Wall posts, notes and direct messages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory (empty keeps everything in memory)",
			},
			&cli.IntFlag{
				Name:  "pool-size",
				Usage: "Number of delivery workers",
				Value: 4,
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Fill the stores with sample posts, comments and messages",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Usage: "File of seed lines, one per line (default: built-in lines)",
					},
					&cli.Int64SliceFlag{
						Name:  "participants",
						Usage: "Participants receiving the seeded messages",
						Value: cli.NewInt64Slice(2, 3, 4),
					},
				},
			},
			{
				Name:   "broadcast",
				Usage:  "Send one message to many participants",
				Action: broadcastCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "text",
						Usage:    "Message text",
						Required: true,
					},
					&cli.Int64SliceFlag{
						Name:     "to",
						Usage:    "Participant ids",
						Required: true,
					},
				},
			},
			{
				Name:   "read",
				Usage:  "Show the newest messages of a chat and mark them read",
				Action: readCommand,
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:     "participant",
						Aliases:  []string{"p"},
						Usage:    "Participant id of the chat",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "count",
						Usage: "Maximum number of messages",
						Value: 10,
					},
				},
			},
			{
				Name:   "inbox",
				Usage:  "Summarize every chat, or search messages",
				Action: inboxCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "search",
						Usage: "Only show messages containing every word of this query",
					},
					&cli.IntFlag{
						Name:  "max-hits",
						Usage: "Maximum number of search hits",
						Value: 20,
					},
				},
			},
			{
				Name:  "notes",
				Usage: "Manage notes",
				Subcommands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Create a note",
						Action: notesAddCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "title", Usage: "Note title", Required: true},
							&cli.StringFlag{Name: "text", Usage: "Note text"},
						},
					},
					{
						Name:   "list",
						Usage:  "List notes",
						Action: notesListCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "sort", Usage: "Sort order (asc, desc, id)", Value: "asc"},
						},
					},
					{
						Name:   "comment",
						Usage:  "Comment on a note",
						Action: notesCommentCommand,
						Flags: []cli.Flag{
							&cli.Uint64Flag{Name: "note", Usage: "Note id", Required: true},
							&cli.Int64Flag{Name: "owner", Usage: "Commenting user id"},
							&cli.StringFlag{Name: "message", Usage: "Comment text", Required: true},
						},
					},
				},
			},
			{
				Name:  "wall",
				Usage: "Manage wall posts",
				Subcommands: []*cli.Command{
					{
						Name:   "post",
						Usage:  "Publish a post",
						Action: wallPostCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "text", Usage: "Post text", Required: true},
							&cli.Int64Flag{Name: "to", Usage: "Wall owner id", Value: int64(core.CurrentUserID)},
							&cli.Int64Flag{Name: "from", Usage: "Author id", Value: int64(core.CurrentUserID)},
						},
					},
					{
						Name:   "list",
						Usage:  "List posts with their comments",
						Action: wallListCommand,
					},
				},
			},
		},
	}
}

// openDatabase opens the database selected by the global flags.
func openDatabase(c *cli.Context) (*wallkit.Database, error) {
	cfg := wallkit.NewConfig(
		wallkit.WithDirectory(c.String("db")),
		wallkit.WithDeliveryPoolSize(c.Int("pool-size")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	db, err := wallkit.NewDatabase(wallkit.WithConfig(cfg), wallkit.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func broadcastCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewDeliveryPipeline()
	if err != nil {
		return fmt.Errorf("failed to create delivery pipeline: %w", err)
	}
	defer pipeline.Release()

	results, err := pipeline.Broadcast(ctx, c.String("text"), toUserIDs(c.Int64Slice("to"))...)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(c.App.Writer, "%d\tfailed: %v\n", r.ParticipantID, r.Err)
			continue
		}
		fmt.Fprintf(c.App.Writer, "%d\tmessage %d\n", r.ParticipantID, r.Message.Id)
	}
	return err
}

func readCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	messages, err := db.ChatRepository().GetMessages(ctx, core.UserID(c.Int64("participant")), c.Int("count"))
	if err != nil {
		return err
	}
	for _, m := range messages {
		fmt.Fprintf(c.App.Writer, "%d\t%s\t%s\n", m.Id, m.Timestamp.Format("2006-01-02 15:04:05"), m.Text)
	}
	return nil
}

func inboxCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	digest, err := db.NewDigest()
	if err != nil {
		return err
	}

	if query := c.String("search"); query != "" {
		hits, err := digest.Search(ctx, query, c.Int("max-hits"))
		if err != nil {
			return err
		}
		for _, h := range hits {
			fmt.Fprintf(c.App.Writer, "%d\t%d\t%s\n", h.ParticipantID, h.Message.Id, h.Message.Text)
		}
		return nil
	}

	summary, err := digest.Summarize(ctx)
	if err != nil {
		return err
	}
	for _, e := range summary.Entries {
		fmt.Fprintf(c.App.Writer, "%d\t%d unread\t%s\n", e.ParticipantID, e.Unread, e.LastMessage)
	}
	fmt.Fprintf(c.App.Writer, "Unread chats: %d\n", summary.UnreadChats)
	return nil
}

func notesAddCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.NoteRepository().AddNote(ctx, c.String("title"), c.String("text"))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Created note %d\n", id)
	return nil
}

func notesListCommand(c *cli.Context) error {
	ctx := context.Background()

	order, err := parseSortOrder(c.String("sort"))
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	notes, err := db.NoteRepository().GetNotes(ctx, core.DefaultOwnerID, order)
	if err != nil {
		return err
	}
	for _, n := range notes {
		fmt.Fprintf(c.App.Writer, "%d\t%s\t%d comments\n", n.Id, n.Title, n.Comments)
	}
	return nil
}

func notesCommentCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.NoteRepository().CreateComment(ctx, core.ID(c.Uint64("note")), core.UserID(c.Int64("owner")), c.String("message"))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Created comment %d\n", id)
	return nil
}

func wallPostCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	post, err := db.PostRepository().AddPost(ctx, &core.Post{
		ToID:     core.UserID(c.Int64("to")),
		FromID:   core.UserID(c.Int64("from")),
		Text:     c.String("text"),
		PostType: "post",
		Likes:    core.DefaultLikes(),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Published post %d\n", post.Id)
	return nil
}

func wallListCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	posts, err := db.PostRepository().ListPosts(ctx)
	if err != nil {
		return err
	}
	for _, p := range posts {
		fmt.Fprintf(c.App.Writer, "%d\t%d->%d\t%s\n", p.Id, p.FromID, p.ToID, p.Text)
		for _, cm := range p.Comments {
			fmt.Fprintf(c.App.Writer, "\t%d\t%d\t%s\n", cm.Id, cm.FromID, cm.Text)
		}
	}
	return nil
}

// parseSortOrder maps a flag value to a sort order. "id" selects storage order.
func parseSortOrder(s string) (core.SortOrder, error) {
	switch strings.ToLower(s) {
	case "asc":
		return core.SortAscending, nil
	case "desc":
		return core.SortDescending, nil
	case "id":
		return core.SortOrder(-1), nil
	default:
		return 0, fmt.Errorf("invalid sort order %q: must be one of asc, desc, id", s)
	}
}

func toUserIDs(values []int64) []core.UserID {
	ids := make([]core.UserID, len(values))
	for i, v := range values {
		ids[i] = core.UserID(v)
	}
	return ids
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
