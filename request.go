package main

type FPGrowthRequest struct {
	Table      Table   `json:"table"`
	Support    float64 `json:"support"`
	Confidence float64 `json:"confidence"`
	Workers    int     `json:"workers"`
}

type Table struct {
	Path      string `json:"path"`
	Separator string `json:"separator"`
}
