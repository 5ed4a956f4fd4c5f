package handler

// DI for all handlers alike.

import (
	"github.com/yumyai/alignview/pkg/db"
	"github.com/yumyai/alignview/pkg/uniprot"
)

type ServiceContext struct {
	Store   *db.SequenceStore
	UniProt *uniprot.Client
	Jobs    *AlignJobManager
}
