package app

import (
	"github.com/specialistvlad/casegrid/internal/registry"
	"github.com/specialistvlad/casegrid/modules/print"
)

// coreModules is the definitive list of all listener modules that are
// compiled into the casegrid binary.
var coreModules = []registry.Module{
	&print.Module{},
}
