// Package seed fills a development store with plausible community content so
// the pages have something to show without calling the content gateway.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"soulshub/internal/models"
	"soulshub/internal/repository"
	"soulshub/internal/store"
)

var postTemplates = []string{
	"So thankful for everyone who showed up to %s night. What a blessing!",
	"Reading through %s this week and it is speaking straight to my heart.",
	"Does anyone want to join me for a morning walk and prayer on %s?",
	"Our study on %s last week really challenged me. Still thinking about it.",
	"Grateful for this community. %s reminded me today that we are not alone.",
}

var prayerTemplates = []string{
	"Please pray for my %s, going through a difficult season.",
	"Asking for prayer for peace about a big decision at %s.",
	"Pray for healing for my %s this week.",
}

// Run populates posts, prayers, and circles with generated fixtures. Existing
// content is left alone.
func Run(ctx context.Context, st store.Store) error {
	gofakeit.Seed(time.Now().UnixNano())

	posts := repository.NewPostRepository(st)
	prayers := repository.NewPrayerRepository(st)
	circles := repository.NewCircleRepository(st)

	existing, err := posts.Posts(ctx)
	if err != nil {
		return fmt.Errorf("read posts: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UnixMilli()

	fixtures := make([]models.Post, 0, len(postTemplates))
	for i, tpl := range postTemplates {
		fixtures = append(fixtures, models.Post{
			ID:           fmt.Sprintf("dev-post-%d", i),
			Author:       gofakeit.FirstName() + " " + gofakeit.LastName(),
			Avatar:       fmt.Sprintf("https://picsum.photos/seed/dev%d/100/100", i),
			Time:         "Earlier today",
			Content:      fmt.Sprintf(tpl, gofakeit.RandomString([]string{"worship", "James", "Psalms", "Saturday", "the message"})),
			Likes:        gofakeit.Number(0, 12),
			Loves:        gofakeit.Number(0, 5),
			Shares:       gofakeit.Number(0, 2),
			CommentsList: []models.Comment{},
			Timestamp:    now - int64(i)*3600000,
		})
	}
	if err := posts.SavePosts(ctx, fixtures); err != nil {
		return fmt.Errorf("save posts: %w", err)
	}

	requests := make([]models.PrayerRequest, 0, len(prayerTemplates))
	for i, tpl := range prayerTemplates {
		requests = append(requests, models.PrayerRequest{
			ID:           fmt.Sprintf("dev-prayer-%d", i),
			Author:       gofakeit.FirstName(),
			Content:      fmt.Sprintf(tpl, gofakeit.RandomString([]string{"father", "neighbor", "coworker", "work", "grandmother"})),
			PrayingCount: gofakeit.Number(0, 8),
			Time:         "Today",
			Timestamp:    now - int64(i)*7200000,
		})
	}
	if err := prayers.SavePrayers(ctx, requests); err != nil {
		return fmt.Errorf("save prayers: %w", err)
	}

	groups := []models.Circle{}
	for i, name := range []string{"Young Adults", "Prayer Warriors", "Morning Devotions"} {
		groups = append(groups, models.Circle{
			ID:      fmt.Sprintf("dev-circle-%d", i),
			Name:    name,
			Members: gofakeit.Number(4, 30),
			Initial: models.CircleInitial(name),
			Color:   gofakeit.RandomString([]string{"bg-amber-500", "bg-emerald-500", "bg-sky-500"}),
		})
	}
	if err := circles.SaveCircles(ctx, groups); err != nil {
		return fmt.Errorf("save circles: %w", err)
	}

	// Dev fixtures count as seeded so the gateway is not asked again.
	return posts.MarkSeeded(ctx)
}
