package vector

// StorageKind identifies the backend a Vector was constructed with.
type StorageKind uint8

const (
	KindDense  StorageKind = 0x1 // KindDense is the slice-backed storage.
	KindSparse StorageKind = 0x2 // KindSparse is the roaring-backed single-column storage.
)

func (k StorageKind) String() string {
	switch k {
	case KindDense:
		return "Dense"
	case KindSparse:
		return "Sparse"
	default:
		return "Unknown"
	}
}
