package domain

// PhotoTriple holds the up-to-three images of one photographed item. A nil
// payload means no photo was supplied and persists as NULL, which is not
// the same thing as an empty photo.
type PhotoTriple struct {
	Photo1 []byte
	Photo2 []byte
	Photo3 []byte
}
