package app

import (
	"time"

	"arxml-viewer/internal/adapters"
	"arxml-viewer/internal/ports"
)

type Service struct {
	Documents ports.DocumentPort
	Validator ports.ValidatorPort
	Writer    ports.ModelWriterPort
	Clock     func() time.Time
}

func NewService() Service {
	documents := adapters.NewDocumentAdapter()
	return Service{
		Documents: documents,
		Validator: adapters.NewValidatorAdapter(documents),
		Writer:    adapters.NewModelWriterAdapter(),
		Clock:     time.Now,
	}
}
