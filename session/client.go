package session

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// QuizSummary is one entry of the quiz catalog
type QuizSummary struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	PassingScore   int    `json:"passingScore"`
	Duration       int    `json:"duration"`
	TotalQuestions int    `json:"totalQuestions"`
}

// APIClient talks to the quiz server over HTTP. It implements Submitter.
type APIClient struct {
	client *resty.Client
}

// NewAPIClient creates a client against the given base URL with a bearer token
func NewAPIClient(baseURL, token string) *APIClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetTimeout(30 * time.Second)

	return &APIClient{client: client}
}

type envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// FetchQuizzes returns the quiz catalog
func (a *APIClient) FetchQuizzes() ([]QuizSummary, error) {
	var body struct {
		envelope
		Data struct {
			Quizzes []QuizSummary `json:"quizzes"`
		} `json:"data"`
	}

	resp, err := a.client.R().SetResult(&body).Get("/quizzes")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !body.Status {
		return nil, fmt.Errorf("fetch quizzes failed: %s", apiError(resp, body.Message))
	}

	return body.Data.Quizzes, nil
}

// FetchQuiz returns one quiz in its sanitized form
func (a *APIClient) FetchQuiz(quizID uint) (*Quiz, error) {
	var body struct {
		envelope
		Data Quiz `json:"data"`
	}

	resp, err := a.client.R().SetResult(&body).Get(fmt.Sprintf("/quizzes/%d", quizID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !body.Status {
		return nil, fmt.Errorf("fetch quiz %d failed: %s", quizID, apiError(resp, body.Message))
	}

	return &body.Data, nil
}

// Submit sends one submission to the grading engine
func (a *APIClient) Submit(submission Submission) (*Result, error) {
	var body struct {
		envelope
		Data struct {
			Result Result `json:"result"`
		} `json:"data"`
	}

	resp, err := a.client.R().
		SetBody(submission).
		SetResult(&body).
		SetError(&body).
		Post("/results/submit")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !body.Status {
		return nil, fmt.Errorf("submission failed: %s", apiError(resp, body.Message))
	}

	return &body.Data.Result, nil
}

func apiError(resp *resty.Response, message string) string {
	if message != "" {
		return message
	}
	return resp.Status()
}
