package main

import (
	"bufio"
	"context"
	"fmt"
	"iter"
	"os"

	"github.com/poiesic/wallkit"
	"github.com/poiesic/wallkit/core"
	"github.com/urfave/cli/v2"
)

var seedLines = []string{
	"Morning everyone, coffee is on the second floor today.",
	"Who left a bicycle in the hallway?",
	"Reminder: the rooftop garden opens at noon.",
	"Lost a blue umbrella near the elevator, please let me know.",
	"The book club meets Thursday to discuss the lighthouse novel.",
	"Fresh bread from the bakery downstairs, help yourselves.",
	"Power maintenance tonight between one and three.",
	"Happy birthday to our neighbor on the fourth floor!",
	"Anyone up for a game of chess in the lobby?",
	"The courtyard fountain is finally working again.",
	"Please keep the back door closed after dark.",
	"Found a set of keys on the bench by the mailboxes.",
}

// linesFromFile returns an iterator over the lines of a file.
func linesFromFile(filename string) (iter.Seq[string], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}, nil
}

// linesFromSlice returns an iterator over a slice of strings.
func linesFromSlice(lines []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range lines {
			if !yield(line) {
				return
			}
		}
	}
}

// seedStats counts what a seed run created.
type seedStats struct {
	posts    int
	comments int
	messages int
}

// seed spreads lines over the stores: every line becomes a wall post and a
// message to the next participant in turn, and every third line also
// comments on the previous post.
func seed(ctx context.Context, db *wallkit.Database, source iter.Seq[string], participants []core.UserID) (seedStats, error) {
	var (
		stats seedStats
		last  *core.Post
		i     int
	)
	for line := range source {
		if line == "" {
			continue
		}
		participant := participants[i%len(participants)]

		post, err := db.PostRepository().AddPost(ctx, &core.Post{
			ToID:     core.CurrentUserID,
			FromID:   participant,
			Text:     line,
			PostType: "post",
			Likes:    core.DefaultLikes(),
		})
		if err != nil {
			return stats, err
		}
		stats.posts++

		if i%3 == 2 && last != nil {
			_, err := db.PostRepository().CreateComment(ctx, last.Id, &core.Comment{
				FromID:      participant,
				Text:        line,
				ReplyToUser: last.FromID,
			})
			if err != nil {
				return stats, err
			}
			stats.comments++
		}

		if _, err := db.ChatRepository().SendMessage(ctx, participant, line); err != nil {
			return stats, err
		}
		stats.messages++

		last = post
		i++
	}
	return stats, nil
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	participants := toUserIDs(c.Int64Slice("participants"))
	if len(participants) == 0 {
		return fmt.Errorf("at least one participant is required")
	}

	source := linesFromSlice(seedLines)
	if name := c.String("file"); name != "" {
		var err error
		source, err = linesFromFile(name)
		if err != nil {
			return fmt.Errorf("failed to open seed file: %w", err)
		}
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := seed(ctx, db, source, participants)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "Seeded %d posts, %d comments, %d messages\n", stats.posts, stats.comments, stats.messages)
	return nil
}
