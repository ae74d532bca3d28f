package router

// History es una pila de fragmentos con cursor, como window.history.
type History struct {
	entries []string
	pos     int
}

func NewHistory() *History {
	return &History{pos: -1}
}

// Visit registra frag como ubicación actual:
//   - igual a la actual: no-op (popstate o click repetido)
//   - la actual no es una página válida: la reemplaza (fallback)
//   - si no: push, descartando el "forward".
func (h *History) Visit(frag string) {
	if cur, ok := h.Location(); ok {
		if cur == frag {
			return
		}
		if _, valid := Parse(cur); !valid {
			h.entries[h.pos] = frag
			return
		}
	}
	h.entries = append(h.entries[:h.pos+1], frag)
	h.pos = len(h.entries) - 1
}

// Push agrega frag sin validar (lo que el usuario escribió en la barra).
func (h *History) Push(frag string) {
	if cur, ok := h.Location(); ok && cur == frag {
		return
	}
	h.entries = append(h.entries[:h.pos+1], frag)
	h.pos = len(h.entries) - 1
}

func (h *History) Location() (string, bool) {
	if h.pos < 0 {
		return "", false
	}
	return h.entries[h.pos], true
}

func (h *History) Back() (string, bool) {
	if h.pos <= 0 {
		return "", false
	}
	h.pos--
	return h.entries[h.pos], true
}

func (h *History) Forward() (string, bool) {
	if h.pos >= len(h.entries)-1 {
		return "", false
	}
	h.pos++
	return h.entries[h.pos], true
}

func (h *History) Len() int { return len(h.entries) }
