package game

import "fmt"

// Catalog holds the display text for one locale
type Catalog struct {
	Locale string

	Draw string
	Win  string
	Lose string

	MoveNames map[Move]string

	Title         string
	NamePrompt    string
	NameRequired  string
	Greeting      string // formatted with the player name
	StartPlaying  string
	ChooseMove    string
	RoundLine     string // formatted with player move, computer move, result
	ScoreLine     string // formatted with player name, player score, computer score
	HistoryTitle  string
	HistoryEmpty  string
	HistoryLine   string // formatted with player move, computer move, result
	ComputerName  string
	HistoryButton string
	CloseHistory  string
}

// English is the default catalog. Its result strings are the canonical ones.
var English = &Catalog{
	Locale: "en",
	Draw:   "Result: Draw",
	Win:    "Result: You Win!",
	Lose:   "Result: You Lose",
	MoveNames: map[Move]string{
		Paper:    "Paper",
		Rock:     "Rock",
		Scissors: "Scissors",
	},
	Title:         "Paper Rock Scissors",
	NamePrompt:    "Enter your name:",
	NameRequired:  "Name must not be empty!",
	Greeting:      "Welcome, %s! Enjoy playing Paper, Rock, Scissors!",
	StartPlaying:  "Start playing",
	ChooseMove:    "Choose Paper, Rock, or Scissors:",
	RoundLine:     "You chose: %s, Computer chose: %s. %s",
	ScoreLine:     "Score - %s: %d | Computer: %d",
	HistoryTitle:  "Game History",
	HistoryEmpty:  "No games played yet.",
	HistoryLine:   "Player: %s, Computer: %s, Result: %s",
	ComputerName:  "Computer",
	HistoryButton: "View history",
	CloseHistory:  "Close",
}

// Indonesian reproduces the text of the first release of the game
var Indonesian = &Catalog{
	Locale: "id",
	Draw:   "Hasil: Seri",
	Win:    "Hasil: Kamu Menang!",
	Lose:   "Hasil: Kamu Kalah",
	MoveNames: map[Move]string{
		Paper:    "Kertas",
		Rock:     "Batu",
		Scissors: "Gunting",
	},
	Title:         "Game Kertas Batu Gunting",
	NamePrompt:    "Masukkan Nama Anda:",
	NameRequired:  "Nama tidak boleh kosong!",
	Greeting:      "Selamat datang, %s! Selamat bermain Kertas, Batu, Gunting!",
	StartPlaying:  "Mulai Bermain",
	ChooseMove:    "Pilih Kertas, Batu, atau Gunting:",
	RoundLine:     "Kamu memilih: %s, Komputer memilih: %s. %s",
	ScoreLine:     "Skor - %s: %d | Komputer: %d",
	HistoryTitle:  "Riwayat Permainan",
	HistoryEmpty:  "Belum ada permainan yang dimainkan.",
	HistoryLine:   "Player: %s, Computer: %s, Result: %s",
	ComputerName:  "Komputer",
	HistoryButton: "Lihat Riwayat",
	CloseHistory:  "Tutup",
}

var catalogs = map[string]*Catalog{
	English.Locale:    English,
	Indonesian.Locale: Indonesian,
}

// Locales returns the supported locale codes
func Locales() []string {
	return []string{English.Locale, Indonesian.Locale}
}

// CatalogFor returns the catalog for a locale code
func CatalogFor(locale string) (*Catalog, error) {
	c, ok := catalogs[locale]
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	return c, nil
}

// Result returns the result text for an outcome
func (c *Catalog) Result(o Outcome) string {
	switch o {
	case PlayerWin:
		return c.Win
	case PlayerLoss:
		return c.Lose
	default:
		return c.Draw
	}
}

// MoveName returns the localized name of a move
func (c *Catalog) MoveName(m Move) string {
	if name, ok := c.MoveNames[m]; ok {
		return name
	}
	return m.String()
}

// FormatRound renders the line shown after a round is played
func (c *Catalog) FormatRound(r RoundResult) string {
	return fmt.Sprintf(c.RoundLine, c.MoveName(r.PlayerMove), c.MoveName(r.ComputerMove), c.Result(r.Outcome))
}

// FormatScore renders the running score line
func (c *Catalog) FormatScore(playerName string, playerScore, computerScore int64) string {
	return fmt.Sprintf(c.ScoreLine, playerName, playerScore, computerScore)
}

// FormatHistoryEntry renders one history line
func (c *Catalog) FormatHistoryEntry(r RoundRecord) string {
	return fmt.Sprintf(c.HistoryLine, c.MoveName(r.PlayerMove), c.MoveName(r.ComputerMove), c.Result(r.Outcome))
}
