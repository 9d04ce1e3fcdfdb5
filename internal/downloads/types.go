package downloads

import "github.com/goodnatureofminers/educhain-backend/internal/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Journal interface {
		Record(event model.Event)
	}
)
