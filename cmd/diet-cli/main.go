package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"diet-server/entities"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
)

const defaultServerURL = "http://localhost:3333"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	statStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
)

type step int

const (
	stepChoosingMode step = iota
	stepEnteringName
	stepEnteringEmail
	stepEnteringUsername
	stepEnteringPassword
	stepAuthenticating
	stepDashboard
	stepEnteringMealName
	stepEnteringMealDescription
	stepEnteringMealDate
	stepEnteringMealTime
	stepEnteringMealInDiet
	stepSavingMeal
)

var modes = []string{"Log in", "Create account"}

type model struct {
	api *apiClient

	step     step
	cursor   int
	register bool

	name     string
	email    string
	username string
	password string

	meal mealPayload

	summary *entities.MealSummary
	meals   []entities.Meal

	currentInput string
	message      string
	quitting     bool
}

type authSuccessMsg struct{ user *entities.User }
type dashboardMsg struct {
	summary *entities.MealSummary
	meals   []entities.Meal
}
type mealSavedMsg struct{ meal *entities.Meal }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel(api *apiClient) model {
	return model{api: api, step: stepChoosingMode}
}

func (m model) Init() tea.Cmd {
	return nil
}

func authenticate(api *apiClient, register bool, p registerPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var (
			user *entities.User
			err  error
		)
		if register {
			user, err = api.register(ctx, p)
		} else {
			user, err = api.login(ctx, p.Username, p.Password)
		}
		if err != nil {
			if isSubjectNotFound(err) {
				return errMsg{fmt.Errorf("wrong username or password")}
			}
			return errMsg{err}
		}
		return authSuccessMsg{user: user}
	}
}

func loadDashboard(api *apiClient) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		summary, err := api.summary(ctx)
		if err != nil {
			return errMsg{err}
		}
		meals, err := api.listMeals(ctx)
		if err != nil {
			return errMsg{err}
		}
		return dashboardMsg{summary: summary, meals: meals}
	}
}

func saveMeal(api *apiClient, p mealPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		meal, err := api.createMeal(ctx, p)
		if err != nil {
			return errMsg{err}
		}
		return mealSavedMsg{meal: meal}
	}
}

func (m model) typing() bool {
	switch m.step {
	case stepEnteringName, stepEnteringEmail, stepEnteringUsername, stepEnteringPassword,
		stepEnteringMealName, stepEnteringMealDescription, stepEnteringMealDate,
		stepEnteringMealTime, stepEnteringMealInDiet:
		return true
	}
	return false
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.typing() {
			return m.updateInput(msg)
		}

		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.step == stepChoosingMode && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.step == stepChoosingMode && m.cursor < len(modes)-1 {
				m.cursor++
			}

		case "n":
			if m.step == stepDashboard {
				m.meal = mealPayload{}
				m.message = ""
				m.step = stepEnteringMealName
			}

		case "r":
			if m.step == stepDashboard {
				return m, loadDashboard(m.api)
			}

		case "enter":
			if m.step == stepChoosingMode {
				m.register = m.cursor == 1
				m.message = ""
				if m.register {
					m.step = stepEnteringName
				} else {
					m.step = stepEnteringUsername
				}
			}
		}

	case authSuccessMsg:
		m.password = ""
		m.step = stepDashboard
		m.message = successStyle.Render("✓ Signed in as " + msg.user.Username)
		return m, loadDashboard(m.api)

	case dashboardMsg:
		m.summary = msg.summary
		m.meals = msg.meals

	case mealSavedMsg:
		m.step = stepDashboard
		m.message = successStyle.Render("✓ Saved " + msg.meal.Name)
		return m, loadDashboard(m.api)

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		switch m.step {
		case stepAuthenticating:
			m.step = stepChoosingMode
		case stepSavingMeal:
			m.step = stepDashboard
		}
	}

	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.currentInput = ""
		if m.step >= stepEnteringMealName {
			m.step = stepDashboard
		} else {
			m.step = stepChoosingMode
		}
		return m, nil

	case tea.KeyBackspace:
		if len(m.currentInput) > 0 {
			r := []rune(m.currentInput)
			m.currentInput = string(r[:len(r)-1])
		}
		return m, nil

	case tea.KeySpace:
		m.currentInput += " "
		return m, nil

	case tea.KeyRunes:
		m.currentInput += string(msg.Runes)
		return m, nil

	case tea.KeyEnter:
		return m.submit()
	}
	return m, nil
}

// submit stores the current input and moves to the next step. Description is
// the only field allowed to be empty.
func (m model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.currentInput)
	if value == "" && m.step != stepEnteringMealDescription {
		return m, nil
	}
	m.currentInput = ""

	switch m.step {
	case stepEnteringName:
		m.name = value
		m.step = stepEnteringEmail

	case stepEnteringEmail:
		m.email = value
		m.step = stepEnteringUsername

	case stepEnteringUsername:
		m.username = value
		m.step = stepEnteringPassword

	case stepEnteringPassword:
		m.password = value
		m.step = stepAuthenticating
		m.message = "Signing in..."
		return m, authenticate(m.api, m.register, registerPayload{
			Name:     m.name,
			Username: m.username,
			Email:    m.email,
			Password: m.password,
		})

	case stepEnteringMealName:
		m.meal.Name = value
		m.step = stepEnteringMealDescription

	case stepEnteringMealDescription:
		m.meal.Description = value
		m.step = stepEnteringMealDate

	case stepEnteringMealDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			m.message = errorStyle.Render("✗ date must look like 2023-10-20")
			return m, nil
		}
		m.meal.Date = value
		m.message = ""
		m.step = stepEnteringMealTime

	case stepEnteringMealTime:
		if _, err := time.Parse("15:04:05", value); err != nil {
			m.message = errorStyle.Render("✗ time must look like 15:10:00")
			return m, nil
		}
		m.meal.Time = value
		m.message = ""
		m.step = stepEnteringMealInDiet

	case stepEnteringMealInDiet:
		inDiet, ok := parseYesNo(value)
		if !ok {
			m.message = errorStyle.Render("✗ answer y or n")
			return m, nil
		}
		m.meal.IsInDiet = inDiet
		m.step = stepSavingMeal
		m.message = "Saving meal..."
		return m, saveMeal(m.api, m.meal)
	}

	return m, nil
}

func parseYesNo(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

func (m model) prompt(s *strings.Builder, label string, masked bool) {
	shown := m.currentInput
	if masked {
		shown = strings.Repeat("•", len([]rune(m.currentInput)))
	}
	if m.message != "" {
		s.WriteString(m.message + "\n\n")
	}
	s.WriteString(promptStyle.Render(label + "\n"))
	s.WriteString(inputStyle.Render("> " + shown))
	s.WriteString("\n\nPress Enter, Esc to go back\n")
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Daily Diet\n\n"))

	switch m.step {
	case stepChoosingMode:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		for i, mode := range modes {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(mode)))
		}
		s.WriteString("\nUse ↑/↓, Enter to choose, q to quit\n")

	case stepEnteringName:
		m.prompt(&s, "Enter your name:", false)
	case stepEnteringEmail:
		m.prompt(&s, "Enter your email:", false)
	case stepEnteringUsername:
		m.prompt(&s, "Enter your username:", false)
	case stepEnteringPassword:
		m.prompt(&s, "Enter your password:", true)

	case stepAuthenticating, stepSavingMeal:
		s.WriteString(m.message + "\n")

	case stepDashboard:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(renderSummary(m.summary))
		s.WriteString("\n\n")
		for _, meal := range m.meals {
			s.WriteString(renderMeal(meal) + "\n")
		}
		s.WriteString("\nn new meal, r refresh, q quit\n")

	case stepEnteringMealName:
		m.prompt(&s, "Meal name:", false)
	case stepEnteringMealDescription:
		m.prompt(&s, "Description (optional):", false)
	case stepEnteringMealDate:
		m.prompt(&s, "Date (YYYY-MM-DD):", false)
	case stepEnteringMealTime:
		m.prompt(&s, "Time (HH:MM:SS):", false)
	case stepEnteringMealInDiet:
		m.prompt(&s, "Within the diet? (y/n):", false)
	}

	return s.String()
}

func renderSummary(sum *entities.MealSummary) string {
	if sum == nil {
		return "Loading summary..."
	}
	best := "-"
	if sum.BestAdherenceDay != nil {
		best = fmt.Sprintf("%d", sum.BestAdherenceDay.DietSequence)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		statStyle.Render(fmt.Sprintf("Meals\n%d", sum.TotalMeals)),
		statStyle.Render(fmt.Sprintf("In diet\n%d", sum.TotalInDiet)),
		statStyle.Render(fmt.Sprintf("Off diet\n%d", sum.TotalNotInDiet)),
		statStyle.Render(fmt.Sprintf("Best day\n%s", best)),
	)
}

func renderMeal(meal entities.Meal) string {
	mark := errorStyle.Render("●")
	if meal.InDiet {
		mark = successStyle.Render("●")
	}
	return fmt.Sprintf("%s %s %s  %s", mark, meal.OccurredOn, meal.OccurredAt, meal.Name)
}

func main() {
	_ = godotenv.Load()

	serverURL := os.Getenv("DIET_SERVER_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}

	api, err := newAPIClient(serverURL)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(api))
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
