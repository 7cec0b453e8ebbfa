// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package narrative holds the story text of the Ghost Protocol: level
// framing, the opening and closing sequences, and the flavor lines that
// accompany progress. Everything here is pure data and string
// assembly; rendering belongs to the terminal layer.
package narrative

import "fmt"

// LevelInfo frames one level of the descent.
type LevelInfo struct {
	Name    string
	Message string
}

var levels = []LevelInfo{
	{Name: "Level 0: The Awakening", Message: "You begin your descent into the cursed system..."},
	{Name: "Level 1: Whispers in the Code", Message: "Strange patterns emerge. The code speaks to you..."},
	{Name: "Level 2: The Forgotten Server", Message: "You reach deeper layers. Reality blurs at the edges..."},
	{Name: "Level 3: Cryptic Messages", Message: "The ghosts grow restless. They know you're here..."},
	{Name: "Level 4: The Final Protocol", Message: "You're close to the truth. But at what cost?"},
}

// ForLevel returns the framing for a level. Levels past the scripted
// descent fall back to the void.
func ForLevel(level int) LevelInfo {
	if level >= 0 && level < len(levels) {
		return levels[level]
	}
	return LevelInfo{Name: "Unknown Level", Message: "The void awaits..."}
}

// LevelTitle returns just the level's display name.
func LevelTitle(level int) string {
	return ForLevel(level).Name
}

// Intro returns the opening sequence for a fresh run.
func Intro(playerName string) string {
	return fmt.Sprintf(`Welcome, %s...

You wake up in a dimly lit room. The air is thick with the smell of dust and decay.
A flickering monitor casts eerie shadows on the walls. As your eyes adjust to the darkness,
you notice something unsettling...

The computer screen displays a message:

    "HELP ME... THEY'RE TRAPPED IN THE SYSTEM..."
    "FIND THE KEYS... UNLOCK THE SOULS..."
    "BUT BEWARE... THE DEEPER YOU GO, THE MORE THEY WATCH..."

Your hands tremble as you approach the keyboard. You have no choice but to dive into
this cursed system. Each challenge you solve might free another trapped soul...
or it might cost you your sanity.

The Ghost Protocol has begun.`, playerName)
}

// Ending returns the win sequence, including the secrets epilogue when
// any were found.
func Ending(secretsFound int) string {
	text := `GHOST PROTOCOL COMPLETE

You've reached the end of the system. The trapped souls are free.

But something feels wrong...

As the last challenge completes, the screen flickers and displays a final message:

    "THANK YOU FOR FREEING US..."
    "BUT NOW YOU'RE ONE OF US..."
    "THE PROTOCOL NEVER ENDS..."
    "IT ONLY WAITS FOR THE NEXT HACKER..."

The room grows cold. The monitor shuts off.

In the darkness, you realize the truth:

The Ghost Protocol wasn't a rescue mission.
It was a trap.
And you've just become the next ghost in the machine.`

	if secretsFound > 0 {
		text += fmt.Sprintf(`

You discovered %d hidden secret(s) along the way.
The secrets reveal the true nature of the Ghost Protocol...`, secretsFound)
	}
	return text
}

// GameOver returns the sanity-depletion sequence.
func GameOver() string {
	return `SANITY DEPLETED

Your mind fractures. The ghosts have claimed another victim.

The last thing you see is the screen flickering:

    "YOU CANNOT ESCAPE..."
    "YOU ARE ONE OF US NOW..."

GAME OVER`
}

var completionFlavor = []string{
	"One soul freed from the digital prison...",
	"The system trembles as the code unravels...",
	"You hear a faint whisper: 'Thank you...'",
	"The darkness recedes, if only for a moment...",
	"Reality glitches. Something shifts in the shadows...",
	"A ghost nods in approval before fading away...",
}

// CompletionFlavor returns one of the rotating completion lines. The
// index may be any non-negative number; callers typically pass a
// completion count so repeated wins cycle through the set.
func CompletionFlavor(n int) string {
	if n < 0 {
		n = -n
	}
	return completionFlavor[n%len(completionFlavor)]
}

// SanityMeter renders the sanity bar as text, one filled block per ten
// points.
func SanityMeter(sanity int) string {
	if sanity < 0 {
		sanity = 0
	}
	if sanity > 100 {
		sanity = 100
	}
	bars := sanity / 10
	meter := ""
	for i := 0; i < bars; i++ {
		meter += "█"
	}
	for i := bars; i < 10; i++ {
		meter += "░"
	}
	return fmt.Sprintf("Sanity: [%s] %d%%", meter, sanity)
}

// SanityWarningThreshold is the sanity level below which the meter is
// accompanied by a warning.
const SanityWarningThreshold = 30

// SanityWarning is shown under the meter when sanity runs low.
const SanityWarning = "Your grip on reality is slipping..."
