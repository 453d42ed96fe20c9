// Package memory implementa los puertos de repositorio sobre mapas en memoria.
// Los repositorios son los dueños de las entidades (almacenamiento tipo arena):
// entregan punteros estables y los mutadores del motor de ventas operan sobre
// ellos. Los mutex protegen la estructura de los mapas; la mutación de campos
// de una entidad asume un único mutador a la vez, como todo el sistema.
package memory

import (
	"fmt"
	"sync"
)

// Sequence generador de IDs consecutivos con prefijo (C1001, TXN10001, ...).
// Reemplaza los contadores globales de proceso: cada directorio recibe el suyo.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int64
}

// NewSequence crea una secuencia que arranca en start.
func NewSequence(prefix string, start int64) *Sequence {
	return &Sequence{prefix: prefix, next: start}
}

// Next devuelve el siguiente ID de la secuencia.
func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("%s%d", s.prefix, s.next)
	s.next++
	return id
}
