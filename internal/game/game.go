// Package game provides the round engine and the main game loop.
package game

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rattrap/internal/lexicon"
	"github.com/samdwyer/rattrap/internal/morph"
	"github.com/samdwyer/rattrap/internal/telemetry"
	"github.com/samdwyer/rattrap/internal/ui"
)

const seedLen = 3

// Game owns the screen, the session and the dictionary services, and
// drives the turn loop.
type Game struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	dict      *lexicon.Dictionary
	extractor *morph.Extractor
	session   *Session
	rng       *rand.Rand
	log       zerolog.Logger
	running   bool

	priorPages   [][]string
	currentPages [][]string
	priorIndex   int
	currentIndex int
	message      string
}

// New creates a game instance backed by the given dictionary.
func New(dict *lexicon.Dictionary, rng *rand.Rand, log zerolog.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:    screen,
		renderer:  ui.NewRenderer(screen),
		dict:      dict,
		extractor: morph.NewExtractor(dict),
		rng:       rng,
		log:       log,
		running:   true,
	}, nil
}

// Run executes the setup screen and then the main turn loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	err := g.setup(ctx)
	initSpan.End()
	if err != nil {
		return err
	}
	if g.session == nil {
		// player quit from the title screen
		return nil
	}

	g.log.Info().
		Str("session", g.session.ID.String()).
		Strs("current", g.session.CurrentWords()).
		Msg("session started")

	g.message = "If confused, press h<Enter>"
	g.repaginate()

	for g.running {
		g.renderer.RenderBoard(ui.Board{
			Score:       g.session.Score(),
			PriorPage:   g.priorPages[g.priorIndex],
			CurrentPage: g.currentPages[g.currentIndex],
			Message:     g.message,
		})
		g.message = ""

		line, ok := g.screen.ReadLine(2, ui.PromptRow, ui.BoardCols-3)
		if !ok {
			g.finish()
			return nil
		}
		if err := g.handleInput(ctx, strings.ToLower(strings.TrimSpace(line))); err != nil {
			return err
		}
	}
	return nil
}

// setup runs the title screen until a session exists or the player quits.
func (g *Game) setup(ctx context.Context) error {
	for g.session == nil {
		g.renderer.RenderTitle()
		line, ok := g.screen.ReadLine(2, ui.PromptRow, ui.BoardCols-3)
		if !ok {
			return nil
		}

		input, valid := lexicon.Normalize(strings.TrimSpace(line))
		if !valid {
			continue
		}
		switch {
		case len(input) == seedLen && g.dict.Spell(input):
			return g.startSession(ctx, input)
		case input == "r" || input == "random":
			seed, err := g.dict.RandomSeed(g.rng)
			if err != nil {
				return err
			}
			return g.startSession(ctx, seed)
		case input == "h" || input == "help":
			g.renderer.RenderHelp(ui.HelpLines())
		case input == "q":
			return nil
		}
	}
	return nil
}

// startSession creates the session for a seed word, merging the seed's
// roots into the used set up front.
func (g *Game) startSession(ctx context.Context, seed string) error {
	roots, err := g.extractor.Roots(ctx, seed)
	if err != nil {
		return err
	}
	g.session = NewSession(seed, roots)
	return nil
}

// handleInput dispatches one line of play-screen input: pagination keys,
// quit, help, or a round submission.
func (g *Game) handleInput(ctx context.Context, input string) error {
	switch input {
	case "":
		return nil
	case ",":
		g.priorIndex = pageDown(g.priorIndex)
		return nil
	case ".":
		g.priorIndex = pageUp(g.priorIndex, len(g.priorPages))
		return nil
	case "<":
		g.currentIndex = pageDown(g.currentIndex)
		return nil
	case ">":
		g.currentIndex = pageUp(g.currentIndex, len(g.currentPages))
		return nil
	case "q":
		g.finish()
		return nil
	case "h", "?":
		g.renderer.RenderHelp(ui.HelpLines())
		return nil
	}

	fields := strings.Fields(input)
	chosen := fields[0]
	candidates := fields[1:]

	res, err := ValidateRound(ctx, g.session, g.extractor, chosen, candidates)
	if err != nil {
		var re *RoundError
		if errors.As(err, &re) {
			g.message = re.Message()
			g.log.Debug().
				Str("session", g.session.ID.String()).
				Str("reason", re.Reason.String()).
				Str("chosen", chosen).
				Msg("round rejected")
			return nil
		}
		return err
	}

	g.session.ApplyRound(chosen, res)
	g.repaginate()
	g.log.Info().
		Str("session", g.session.ID.String()).
		Str("chosen", chosen).
		Strs("candidates", candidates).
		Int("score_delta", res.ScoreDelta).
		Int("score", g.session.Score()).
		Msg("round accepted")
	return nil
}

// finish applies the end-of-session bonus and shows the final score.
func (g *Game) finish() {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(context.Background(), "game.finish")
	final := g.session.Finalize()
	span.SetAttributes(attribute.Int("game.final_score", final))
	span.End()

	g.log.Info().
		Str("session", g.session.ID.String()).
		Int("final_score", final).
		Msg("session finished")
	g.renderer.RenderFinal(final)
	g.running = false
}

// repaginate rebuilds the word-list pages and clamps the page cursors.
func (g *Game) repaginate() {
	g.priorPages = ui.Paginate(g.session.PriorWords(), ui.BoardCols, ui.PriorPageRows)
	g.currentPages = ui.Paginate(g.session.CurrentWords(), ui.BoardCols, ui.CurrentPageRows)
	if g.priorIndex >= len(g.priorPages) {
		g.priorIndex = len(g.priorPages) - 1
	}
	if g.currentIndex >= len(g.currentPages) {
		g.currentIndex = len(g.currentPages) - 1
	}
}

func pageDown(index int) int {
	if index > 0 {
		return index - 1
	}
	return 0
}

func pageUp(index, pages int) int {
	if index < pages-1 {
		return index + 1
	}
	return index
}
