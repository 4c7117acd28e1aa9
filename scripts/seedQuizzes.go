package main

import (
	"log"

	"quizcert/config"
	"quizcert/database"
	"quizcert/models"
)

var sampleQuizzes = []models.Quiz{
	{
		Title:        "JavaScript Fundamentals",
		Description:  "Test your knowledge of JavaScript basics including variables, functions, and data types.",
		PassingScore: 70,
		Duration:     15,
		Questions: models.QuestionList{
			{
				QuestionText:  "What is the correct way to declare a variable in JavaScript?",
				Options:       []string{"var myVar;", "variable myVar;", "declare myVar;", "v myVar;"},
				CorrectAnswer: 0,
			},
			{
				QuestionText:  "Which of the following is NOT a JavaScript data type?",
				Options:       []string{"String", "Boolean", "Integer", "Undefined"},
				CorrectAnswer: 2,
			},
			{
				QuestionText:  "How do you write \"Hello World\" in an alert box?",
				Options:       []string{"alertBox(\"Hello World\");", "alert(\"Hello World\");", "msg(\"Hello World\");", "msgBox(\"Hello World\");"},
				CorrectAnswer: 1,
			},
			{
				QuestionText:  "Which operator is used to assign a value to a variable?",
				Options:       []string{"*", "x", "=", "=="},
				CorrectAnswer: 2,
			},
			{
				QuestionText:  "What will the following code return: Boolean(10 > 9)",
				Options:       []string{"true", "false", "NaN", "undefined"},
				CorrectAnswer: 0,
			},
		},
	},
	{
		Title:        "React Basics",
		Description:  "Evaluate your understanding of React components, props, and state management.",
		PassingScore: 75,
		Duration:     20,
		Questions: models.QuestionList{
			{
				QuestionText:  "What is JSX?",
				Options:       []string{"A JavaScript library", "A syntax extension for JavaScript", "A CSS framework", "A database"},
				CorrectAnswer: 1,
			},
			{
				QuestionText:  "How do you create a functional component in React?",
				Options:       []string{"function Component() {}", "class Component extends React.Component {}", "const Component = () => {}", "Both A and C"},
				CorrectAnswer: 3,
			},
			{
				QuestionText:  "What hook is used to manage state in functional components?",
				Options:       []string{"useEffect", "useState", "useContext", "useReducer"},
				CorrectAnswer: 1,
			},
			{
				QuestionText:  "How do you pass data from parent to child component?",
				Options:       []string{"Props", "State", "Context", "Redux"},
				CorrectAnswer: 0,
			},
		},
	},
	{
		Title:        "Web Development Fundamentals",
		Description:  "Test your knowledge of HTML, CSS, and general web development concepts.",
		PassingScore: 65,
		Duration:     25,
		Questions: models.QuestionList{
			{
				QuestionText:  "What does HTML stand for?",
				Options:       []string{"Hyper Text Markup Language", "Home Tool Markup Language", "Hyperlinks and Text Markup Language", "Hyper Text Making Language"},
				CorrectAnswer: 0,
			},
			{
				QuestionText:  "Which CSS property is used to change the text color of an element?",
				Options:       []string{"text-color", "color", "font-color", "text-style"},
				CorrectAnswer: 1,
			},
			{
				QuestionText:  "What is the correct HTML element for inserting a line break?",
				Options:       []string{"<break>", "<br>", "<lb>", "<newline>"},
				CorrectAnswer: 1,
			},
			{
				QuestionText:  "Which HTTP method is used to send data to a server to create/update a resource?",
				Options:       []string{"GET", "POST", "PUT", "Both B and C"},
				CorrectAnswer: 3,
			},
			{
				QuestionText:  "What does CSS stand for?",
				Options:       []string{"Computer Style Sheets", "Creative Style Sheets", "Cascading Style Sheets", "Colorful Style Sheets"},
				CorrectAnswer: 2,
			},
			{
				QuestionText:  "Which HTML attribute is used to define inline styles?",
				Options:       []string{"class", "style", "styles", "font"},
				CorrectAnswer: 1,
			},
		},
	},
}

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	// Re-seed from scratch
	if err := db.Where("1 = 1").Delete(&models.Quiz{}).Error; err != nil {
		log.Fatalf("Failed to clear quizzes: %v", err)
	}

	if err := db.Create(&sampleQuizzes).Error; err != nil {
		log.Fatalf("Failed to insert sample quizzes: %v", err)
	}

	log.Printf("Seeded %d sample quizzes successfully.", len(sampleQuizzes))
}
