package quiz

import "fmt"

// systemMessage pins the model to bare-JSON output. The recovery parser
// still tolerates fences and prose in case the instruction is ignored.
const systemMessage = `You are a Python quiz generator that ALWAYS returns valid JSON.
Your output must be parseable by a strict JSON parser.
Never include explanatory text outside the JSON structure.
Never use markdown code blocks.
Always ensure the correct_answer field is a number (0-3).`

func SystemMessage() string { return systemMessage }

func BuildUserMessage(topic, language, familiarityLevel string) string {
	return fmt.Sprintf(`Generate a quiz to test knowledge on the Python topic: %[1]s

The quiz should be appropriate for a learner with %[2]s level of Python familiarity.
Create 5 multiple-choice questions with 4 options each.

For each question, provide:
1. A clear explanation of why the correct answer is right
2. 3-4 specific improvement suggestions in %[3]s for someone who got it wrong

IMPORTANT FORMATTING INSTRUCTIONS:
- Your response must be VALID JSON
- Do not include any text before or after the JSON
- Do not include markdown formatting like `+"```json or ```"+`
- Do not include any explanations outside the JSON structure
- The correct_answer field must be a number (0, 1, 2, or 3) representing the index of the correct option

Format your response as a JSON array of objects with the following structure:
[
  {
    "question": "Question text here",
    "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
    "correct_answer": 0,
    "explanation": "Detailed explanation of why this answer is correct",
    "improvement_suggestions": [
      "Suggestion 1 in %[3]s",
      "Suggestion 2 in %[3]s",
      "Suggestion 3 in %[3]s"
    ]
  },
  ...
]

Ensure the questions are challenging but appropriate for the %[2]s level.
The quiz should be in %[3]s language.
`, topic, familiarityLevel, language)
}
