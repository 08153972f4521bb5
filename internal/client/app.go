package client

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/MKhiriev/viral-craft/internal/adapter"
	"github.com/MKhiriev/viral-craft/internal/config"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/models"
	"github.com/atotto/clipboard"
)

type App struct {
	adapter adapter.ServerAdapter
	cfg     *config.ClientConfig
	out     io.Writer

	// copyText is clipboard.WriteAll outside of tests.
	copyText func(string) error

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil || cfg == nil || out == nil {
		return nil, errors.New("client app: adapter, config and output are required")
	}

	return &App{
		adapter:  serverAdapter,
		cfg:      cfg,
		out:      out,
		copyText: clipboard.WriteAll,
		logger:   logger,
	}, nil
}

// Run checks the server, authenticates, then generates a concept for the configured prompt and
// prints it.
func (a *App) Run(ctx context.Context) error {
	health, err := a.adapter.Health(ctx)
	if err != nil {
		return fmt.Errorf("server health check: %w", err)
	}
	a.logger.Debug().
		Str("service", health.Service).
		Str("version", health.Version).
		Str("database", health.Database).
		Msg("server is up")

	if err = a.authenticate(ctx); err != nil {
		return err
	}

	a.logger.Info().Str("prompt", a.cfg.Prompt).Msg("requesting generation")

	result, err := a.adapter.GenerateVideo(ctx, a.cfg.Prompt)
	if err != nil {
		return fmt.Errorf("generate video: %w", err)
	}

	if err = printGeneration(a.out, result); err != nil {
		return fmt.Errorf("print generation: %w", err)
	}

	if a.cfg.Copy {
		// headless machines have no clipboard; the output above is enough
		if err = a.copyText(result.Description); err != nil {
			a.logger.Warn().Err(err).Msg("copy to clipboard")
		} else {
			a.logger.Info().Msg("description copied to clipboard")
		}
	}

	if a.cfg.Trending {
		snapshot, err := a.adapter.TrendingElements(ctx)
		if err != nil {
			return fmt.Errorf("trending elements: %w", err)
		}
		if err = printTrending(a.out, snapshot); err != nil {
			return fmt.Errorf("print trending: %w", err)
		}
	}

	return nil
}

// authenticate registers when asked to and logs in otherwise. An account
// that already exists is logged in.
func (a *App) authenticate(ctx context.Context) error {
	if a.cfg.Register {
		_, err := a.adapter.Register(ctx, models.RegisterRequest{
			Username: a.cfg.Username,
			Email:    a.cfg.Email,
			Password: a.cfg.Password,
		})
		if err == nil {
			a.logger.Info().Str("username", a.cfg.Username).Msg("registered")
			return nil
		}
		if !errors.Is(err, adapter.ErrConflict) {
			return fmt.Errorf("register: %w", err)
		}
		a.logger.Info().Str("username", a.cfg.Username).Msg("account exists, logging in")
	}

	if _, err := a.adapter.Login(ctx, models.LoginRequest{Username: a.cfg.Username, Password: a.cfg.Password}); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	a.logger.Info().Str("username", a.cfg.Username).Msg("logged in")
	return nil
}

func printGeneration(w io.Writer, g models.GenerateVideoResponse) error {
	st := newSummaryStyles(w)
	line := func(b *strings.Builder, label, value string) {
		fmt.Fprintf(b, "%s %s\n", st.label.Render(fmt.Sprintf("%-16s", label+":")), value)
	}

	var b strings.Builder
	b.WriteString(st.title.Render("Generated concept"))
	b.WriteString("\n")

	line(&b, "Category", string(g.ContentCategory))
	line(&b, "Viral score", st.score.Render(fmt.Sprintf("%d", g.EstimatedViralScore)))
	line(&b, "Applied trends", orNone(g.AppliedTrends))
	line(&b, "Platforms", orNone(g.SuggestedPlatforms))
	line(&b, "Processing time", fmt.Sprintf("%.1fs", g.ProcessingTime))
	line(&b, "Best time", g.Recommendations.BestPostingTime)
	line(&b, "Hashtags", g.Recommendations.SuggestedHashtags)
	line(&b, "Reach", g.Recommendations.EstimatedReach)

	b.WriteString("\n")
	b.WriteString(st.body.Render(g.Description))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func printTrending(w io.Writer, s models.TrendingSnapshot) error {
	st := newSummaryStyles(w)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(st.title.Render(fmt.Sprintf("Trending now (%d tracked)", s.TotalTrends)))
	b.WriteString("\n")
	for _, group := range []struct {
		label string
		items []models.TrendSnapshotItem
	}{
		{"Sound", s.Sounds},
		{"Effect", s.Effects},
		{"Meme", s.Memes},
	} {
		top := "none"
		if len(group.items) > 0 {
			best := slices.MaxFunc(group.items, func(x, y models.TrendSnapshotItem) int {
				return cmp.Compare(x.Popularity, y.Popularity)
			})
			top = fmt.Sprintf("%s (%.0f)", best.Name, best.Popularity)
		}
		fmt.Fprintf(&b, "%s %s\n", st.label.Render(fmt.Sprintf("%-16s", group.label+":")), top)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
