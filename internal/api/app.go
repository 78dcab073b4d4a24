package api

import (
	"github.com/mishap29/Lifestyle-Coach/internal"
	"github.com/mishap29/Lifestyle-Coach/internal/advice"
	"github.com/mishap29/Lifestyle-Coach/internal/service"
)

type App interface {
	Logger() internal.Logger
	Sleep() *service.SleepCoach
	Exercise() *service.ExercisePlanner
	Advice() *advice.Composer
}

type app struct {
	logger   internal.Logger
	sleep    *service.SleepCoach
	exercise *service.ExercisePlanner
	advice   *advice.Composer
}

func NewApp(logger internal.Logger, sleep *service.SleepCoach, exercise *service.ExercisePlanner, composer *advice.Composer) App {
	return &app{logger: logger, sleep: sleep, exercise: exercise, advice: composer}
}

func (a *app) Logger() internal.Logger            { return a.logger }
func (a *app) Sleep() *service.SleepCoach         { return a.sleep }
func (a *app) Exercise() *service.ExercisePlanner { return a.exercise }
func (a *app) Advice() *advice.Composer           { return a.advice }
