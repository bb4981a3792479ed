package ui

import "filmcompressor/internal/model"

type filesLoadedMsg struct {
	Files []model.InputFile
	Err   error
}
