package hangman

import (
	"fmt"
	"hangman-bot/domain"
	"strings"
)

const (
	alreadyInProgressText = "Ya tienes un juego en curso. ¡Termina ese primero!"
	startText             = "🎮 ¡Adivina la palabra!\n\n%s\n\nIntentos restantes: %d\nEnvía una letra para jugar o escribe *me rindo* para abandonar."
	hitText               = "✅ La letra *%c* está en la palabra."
	missText              = "❌ La letra *%c* no está en la palabra."
	repeatedText          = "⚠️ Ya intentaste la letra *%c*."
	wonText               = "Que pro, ganaste 🥳, adivinaste la palabra \"%s\".\n\n*Has ganado:* %d Exp."
	lostText              = "❌ ¡Perdiste! La palabra correcta era: %s"
	forfeitText           = "🏳️ Juego terminado. La palabra correcta era: %s"
	expiredText           = "⌛ Tu partida de ahorcado expiró. La palabra correcta era: %s"
)

func startMessage(session domain.GameSession) string {
	return fmt.Sprintf(startText, domain.Mask(session.Word, session.Guessed), session.RemainingAttempts)
}

// progressMessage shows the mask, the gallows drawn so far and the attempts left.
func progressMessage(outcome domain.Outcome, letter rune) string {
	session := outcome.Session
	var header string
	switch {
	case outcome.Repeated:
		header = fmt.Sprintf(repeatedText, letter)
	case outcome.Hit:
		header = fmt.Sprintf(hitText, letter)
	default:
		header = fmt.Sprintf(missText, letter)
	}

	parts := []string{header, domain.Mask(session.Word, session.Guessed)}
	if figure := domain.Figure(session.RemainingAttempts, session.MaxAttempts); figure != "" {
		parts = append(parts, figure)
	}
	parts = append(parts, fmt.Sprintf("Intentos restantes: %d", session.RemainingAttempts))
	return strings.Join(parts, "\n\n")
}

func wonMessage(word string, exp int64) string {
	return fmt.Sprintf(wonText, word, exp)
}

func lostMessage(session domain.GameSession) string {
	return fmt.Sprintf(lostText, session.Word) + "\n\n" +
		domain.Figure(session.RemainingAttempts, session.MaxAttempts)
}

func forfeitMessage(word string) string {
	return fmt.Sprintf(forfeitText, word)
}

func expiredMessage(word string) string {
	return fmt.Sprintf(expiredText, word)
}
