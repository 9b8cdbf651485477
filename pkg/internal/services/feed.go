package services

import (
	"sort"
	"time"

	"github.com/unilink-app/timeline/pkg/internal/database"
	"github.com/unilink-app/timeline/pkg/internal/models"

	"github.com/samber/lo"
)

type FeedEntry struct {
	Type      string    `json:"type"`
	Data      any       `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

// GetFeed merges the timeline, question threads, and assignment postings
// into one recency-ordered sequence. Each call returns the current result
// set at call time; there is no cursor.
func GetFeed(limit int) ([]FeedEntry, error) {
	if limit < 0 {
		limit = 0
	}

	var feed []FeedEntry

	posts, err := ListPost(database.C, limit, 0, "created_at DESC")
	if err != nil {
		return nil, err
	}
	feed = append(feed, lo.Map(posts, func(post *models.Post, _ int) FeedEntry {
		return FeedEntry{
			Type:      "timeline.post",
			Data:      post,
			CreatedAt: post.CreatedAt,
		}
	})...)

	questions, err := ListQuestions(limit, 0)
	if err != nil {
		return feed, err
	}
	feed = append(feed, lo.Map(questions, func(question models.Question, _ int) FeedEntry {
		return FeedEntry{
			Type:      "timeline.question",
			Data:      question,
			CreatedAt: question.CreatedAt,
		}
	})...)

	assignments, err := ListAssignments(limit, 0)
	if err != nil {
		return feed, err
	}
	feed = append(feed, lo.Map(assignments, func(assignment models.Assignment, _ int) FeedEntry {
		return FeedEntry{
			Type:      "timeline.assignment",
			Data:      assignment,
			CreatedAt: assignment.CreatedAt,
		}
	})...)

	sort.Slice(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})

	if len(feed) > limit {
		feed = feed[:limit]
	}

	return feed, nil
}
