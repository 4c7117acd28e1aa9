package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"quizcert/session"

	"github.com/fatih/color"
)

func main() {
	server := flag.String("server", "http://localhost:5001", "quiz server base URL")
	token := flag.String("token", "", "bearer token")
	quizID := flag.Uint("quiz", 0, "quiz ID to take (omit to list quizzes)")
	flag.Parse()

	if *token == "" {
		log.Fatal("missing -token")
	}

	client := session.NewAPIClient(*server, *token)

	if *quizID == 0 {
		listQuizzes(client)
		return
	}

	takeQuiz(client, *quizID)
}

func listQuizzes(client *session.APIClient) {
	quizzes, err := client.FetchQuizzes()
	if err != nil {
		log.Fatalf("Failed to fetch quizzes: %v", err)
	}

	bold := color.New(color.Bold)
	bold.Println("Available quizzes:")
	for _, q := range quizzes {
		fmt.Printf("  [%d] ", q.ID)
		color.Cyan("%s", q.Title)
		fmt.Printf("      %s\n", q.Description)
		fmt.Printf("      %d questions, %d min, passing score %d%%\n",
			q.TotalQuestions, q.Duration, q.PassingScore)
	}
	fmt.Println("\nTake one with -quiz <id>")
}

func takeQuiz(client *session.APIClient, quizID uint) {
	quiz, err := client.FetchQuiz(quizID)
	if err != nil {
		log.Fatalf("Failed to fetch quiz: %v", err)
	}

	s := session.NewSession(client)
	if err := s.Start(*quiz); err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	s.StartTimer()

	color.New(color.Bold).Printf("\n%s\n", quiz.Title)
	fmt.Printf("%d questions, %d minutes. Commands: 1-9 answer, n next, p prev, s submit, q quit\n",
		len(quiz.Questions), quiz.Duration)

	reader := bufio.NewScanner(os.Stdin)

	for s.State() == session.StateInProgress {
		question, idx := s.CurrentQuestion()
		answers := s.Answers()

		fmt.Println()
		color.Cyan("Question %d/%d  (%s left, %d answered)",
			idx+1, len(quiz.Questions), formatTime(s.Remaining()), s.Answered())
		fmt.Println(question.QuestionText)
		for i, option := range question.Options {
			marker := " "
			if answers[idx] == i {
				marker = ">"
			}
			fmt.Printf("  %s %d. %s\n", marker, i+1, option)
		}

		fmt.Print("> ")
		if !reader.Scan() {
			s.Abandon()
			break
		}
		input := strings.TrimSpace(reader.Text())

		// The countdown may have forced submission while we were reading.
		if s.State() != session.StateInProgress {
			break
		}

		switch input {
		case "n":
			s.Advance()
		case "p":
			s.Retreat()
		case "s":
			if err := s.Submit(); err != nil {
				color.Red("Submission failed: %v", err)
				color.Yellow("Your answers are kept. Retry? (y/n)")
				if reader.Scan() && strings.TrimSpace(reader.Text()) == "y" {
					if err := s.Retry(); err != nil {
						color.Red("Retry failed: %v. Check your history before trying again.", err)
					}
				}
			}
		case "q":
			s.Abandon()
		default:
			if n, err := strconv.Atoi(input); err == nil && n >= 1 {
				s.SelectAnswer(n - 1)
				s.Advance()
			}
		}
	}

	printOutcome(s)
}

func printOutcome(s *session.Session) {
	switch s.State() {
	case session.StateCompleted:
		result := s.Result()
		fmt.Println()
		if result.Passed {
			color.Green("PASSED — score %d%% (%d/%d correct)",
				result.Score, result.CorrectAnswers, result.TotalQuestions)
			fmt.Printf("Certificate available: GET /certificates/generate/%d\n", result.ID)
		} else {
			color.Red("FAILED — score %d%% (%d/%d correct), passing score %d%%",
				result.Score, result.CorrectAnswers, result.TotalQuestions, result.Quiz.PassingScore)
		}
		fmt.Printf("Time spent: %s\n", formatTime(result.TimeSpent))
	case session.StateFailed:
		if err := s.Err(); err != nil {
			color.Yellow("Attempt not graded: %v", err)
		}
	}
}

func formatTime(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
