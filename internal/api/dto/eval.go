package dto

import "github.com/DjordjeVuckovic/calc-hunter/internal/history"

// EvalRequest carries either an expression or a command, e.g. {"exp": "2 * (3 + 4)"} or {"cmd": "echo"}.
type EvalRequest struct {
	Exp *string `json:"exp,omitempty"`
	Cmd *string `json:"cmd,omitempty"`
	RPN bool    `json:"rpn,omitempty"`
}

type EvalResponse struct {
	Res float64 `json:"res"`
	RPN string  `json:"rpn,omitempty"`
}

type EchoResponse struct {
	Res string `json:"res"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
	Code  string `json:"code,omitempty"`
}

type HistoryResponse struct {
	Evaluations []history.Evaluation `json:"evaluations"`
	Count       int                  `json:"count"`
}

const CmdEcho = "echo"
