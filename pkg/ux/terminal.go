// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/AleutianAI/ghost-protocol/pkg/game"
	"github.com/AleutianAI/ghost-protocol/pkg/narrative"
)

// banner is the title card shown at the top of intro and ending
// screens.
const banner = `═══ GHOST PROTOCOL INITIATED ═══
A Horror-Themed Hacking Simulator`

// Terminal is the real Presenter: it renders the game onto a terminal
// through the package styles and timed effects, and reads player input
// through an InputReader with history.
type Terminal struct {
	out     io.Writer
	reader  InputReader
	effects *Effects
	history *History

	// completions counts successes this session to rotate the flavor
	// lines shown on each completion.
	completions int
}

var _ game.Presenter = (*Terminal)(nil)

// NewTerminal builds a presenter over the given writer and reader.
// Nil arguments default to os.Stdout and an environment-appropriate
// input reader.
func NewTerminal(out io.Writer, reader InputReader) *Terminal {
	if out == nil {
		out = os.Stdout
	}
	history := NewHistory(DefaultHistorySize)
	if reader == nil {
		reader = NewInputReader(history)
	}
	return &Terminal{
		out:     out,
		reader:  reader,
		effects: NewEffects(out, nil),
		history: history,
	}
}

// History exposes the session's command history for the stats view.
func (t *Terminal) History() *History {
	return t.history
}

// ReadLine reads one trimmed line, recording it in history.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	line, err := t.reader.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	// Interactive readers record internally; scripted and stdin paths
	// go through here.
	if _, ok := t.reader.(*InteractiveReader); !ok {
		t.history.Add(line)
	}
	return line, nil
}

// ShowMenu renders the level header, the challenge table, and the meta
// commands.
func (t *Terminal) ShowMenu(header string, items []game.MenuItem, commands []string) error {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, Banner(header, Styles.Subtitle))
	fmt.Fprintln(t.out)

	for _, item := range items {
		status := Styles.StatusOpen.String() + " " + Styles.Muted.Render("Available")
		if item.Completed {
			status = Styles.StatusDone.String() + " " + Styles.Success.Render("Completed")
		}
		fmt.Fprintf(t.out, "  %s %s %s %s\n",
			Styles.Bold.Render(fmt.Sprintf("[%d]", item.Index)),
			item.Title,
			status,
			Styles.Muted.Render(fmt.Sprintf("(+%d XP, -%d sanity)", item.XPReward, item.SanityCost)))
	}

	fmt.Fprintln(t.out)
	for _, cmd := range commands {
		fmt.Fprintf(t.out, "  %s %s\n", Styles.Muted.Render(string(IconArrow)), cmd)
	}
	fmt.Fprintln(t.out)
	return nil
}

// ShowMessage renders one classified line.
func (t *Terminal) ShowMessage(kind game.MessageKind, text string) error {
	switch kind {
	case game.KindSuccess:
		fmt.Fprintf(t.out, "%s %s\n", IconDone.Render(), Styles.Success.Render(text))
	case game.KindWarning:
		fmt.Fprintf(t.out, "%s %s\n", IconWarning.Render(), Styles.Warning.Render(text))
	case game.KindError:
		fmt.Fprintf(t.out, "%s %s\n", IconError.Render(), Styles.Error.Render(text))
	case game.KindHint:
		fmt.Fprintln(t.out, Styles.HintBox.Render(IconHint.Render()+" "+Styles.Hint.Render(text)))
	default:
		fmt.Fprintf(t.out, "%s %s\n", Styles.Muted.Render("│"), text)
	}
	return nil
}

// ShowStats renders the detailed progress view: identity, progression,
// sanity, per-level completion, and the session's recent commands.
func (t *Terminal) ShowStats(state *game.PlayerState, cat *game.Catalogue) error {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, Banner("PLAYER STATISTICS", Styles.Subtitle))
	fmt.Fprintln(t.out)

	fmt.Fprintf(t.out, "  Player:     %s\n", Styles.Bold.Render(state.PlayerName))
	fmt.Fprintf(t.out, "  Level:      %d\n", state.CurrentLevel)
	fmt.Fprintf(t.out, "  Experience: %d XP\n", state.Experience)
	fmt.Fprintf(t.out, "  %s\n", t.renderSanity(state.Sanity))
	fmt.Fprintf(t.out, "  Secrets:    %d discovered\n", len(state.DiscoveredSecrets))
	fmt.Fprintln(t.out)

	total := cat.Len()
	done := len(state.CompletedChallenges)
	fmt.Fprintf(t.out, "  %s\n", ProgressBar("Challenges", done, total, 20))

	for level := 0; ; level++ {
		challenges := cat.ByLevel(level)
		if len(challenges) == 0 {
			if level > game.MaxLevel {
				break
			}
			continue
		}
		completed := 0
		for _, ch := range challenges {
			if state.HasCompleted(ch.ID) {
				completed++
			}
		}
		info := narrative.ForLevel(level)
		fmt.Fprintf(t.out, "    %s %d/%d\n", Styles.Muted.Render(info.Name+":"), completed, len(challenges))
	}

	if done > 0 {
		fmt.Fprintln(t.out)
		fmt.Fprintf(t.out, "  %s\n", Styles.Muted.Render("Completed challenges:"))
		for _, ch := range cat.All() {
			if state.HasCompleted(ch.ID) {
				fmt.Fprintf(t.out, "    %s %s (+%d XP)\n", Styles.StatusDone.String(), ch.Title, ch.XPReward)
			}
		}
	}

	if len(state.DiscoveredSecrets) > 0 {
		secrets := make([]string, 0, len(state.DiscoveredSecrets))
		for s := range state.DiscoveredSecrets {
			secrets = append(secrets, s)
		}
		sort.Strings(secrets)
		fmt.Fprintln(t.out)
		fmt.Fprintf(t.out, "  %s\n", Styles.Muted.Render("Secrets discovered:"))
		for _, s := range secrets {
			fmt.Fprintf(t.out, "    %s %s\n", Styles.Spectral.Render(string(IconHint)), s)
		}
	}

	if recent := t.history.Entries(); len(recent) > 0 {
		fmt.Fprintln(t.out)
		fmt.Fprintf(t.out, "  %s\n", Styles.Muted.Render("Recent commands:"))
		start := 0
		if len(recent) > 5 {
			start = len(recent) - 5
		}
		for _, cmd := range recent[start:] {
			fmt.Fprintf(t.out, "    %s %s\n", Styles.Muted.Render("$"), cmd)
		}
	}
	fmt.Fprintln(t.out)
	return nil
}

// ShowChallengeIntro renders the challenge header and description.
func (t *Terminal) ShowChallengeIntro(ch *game.Challenge) error {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, Banner("CHALLENGE INITIATED", Styles.Warning))
	fmt.Fprintln(t.out, Styles.Title.Render("  "+ch.Title))
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, ch.Description)
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, Styles.Muted.Render("  (type your answer, or 'hint' / 'skip')"))
	return nil
}

// ShowCompletion renders the success flourish, rotating through the
// flavor lines.
func (t *Terminal) ShowCompletion(xp int) error {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, Banner("CHALLENGE COMPLETE", Styles.Success))
	fmt.Fprintf(t.out, "  %s\n", Styles.Warning.Render(fmt.Sprintf("Reward: +%d XP", xp)))
	fmt.Fprintf(t.out, "  %s %s\n",
		string(IconSkull),
		Styles.Spectral.Render(narrative.CompletionFlavor(t.completions)))
	fmt.Fprintln(t.out)
	t.completions++
	t.effects.Scare(0.05)
	return nil
}

// ShowIntro renders the opening narrative for a fresh run.
func (t *Terminal) ShowIntro(playerName string) error {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, Banner(banner, Styles.Error))
	fmt.Fprintln(t.out)
	t.effects.Typewriter(fmt.Sprintf("Welcome, %s...", playerName))
	fmt.Fprintln(t.out, narrative.Intro(playerName))
	return t.Pause()
}

// ShowEnding renders the win narrative.
func (t *Terminal) ShowEnding(secretsFound int) error {
	t.effects.Scare(0.8)
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, Styles.Error.Render(narrative.Ending(secretsFound)))
	fmt.Fprintln(t.out)
	fmt.Fprintf(t.out, "%s %s\n", string(IconGhost), Styles.Success.Render("Thank you for playing THE HACK: Ghost Protocol"))
	return t.Pause()
}

// ShowGameOver renders the sanity-depletion narrative.
func (t *Terminal) ShowGameOver() error {
	t.effects.Scare(1.0)
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, Styles.Error.Render(narrative.GameOver()))
	fmt.Fprintln(t.out)
	return t.Pause()
}

// ShowSanityMeter renders the sanity bar, colored by how much is left.
func (t *Terminal) ShowSanityMeter(sanity int) error {
	fmt.Fprintf(t.out, "  %s\n", t.renderSanity(sanity))
	if sanity < narrative.SanityWarningThreshold {
		fmt.Fprintf(t.out, "  %s ", Styles.StatusWarning.String())
		t.effects.Glitch(narrative.SanityWarning)
	}
	t.effects.Scare(ScareProbability(sanity))
	return nil
}

// Pause blocks until the player presses Enter.
func (t *Terminal) Pause() error {
	_, err := t.reader.ReadLine(Styles.Muted.Render("Press Enter to continue..."))
	if err == io.EOF {
		return nil
	}
	return err
}

func (t *Terminal) renderSanity(sanity int) string {
	meter := narrative.SanityMeter(sanity)
	switch {
	case sanity > 70:
		return Styles.Success.Render(meter)
	case sanity > 40:
		return Styles.Warning.Render(meter)
	default:
		return Styles.Error.Render(meter)
	}
}
