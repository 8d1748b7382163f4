package shroud_test

import (
	"fmt"

	"github.com/zoobzio/shroud"
)

func ExampleFixed() {
	key, err := shroud.DecodeHexFixed[[4]byte]("deadbeef")
	if err != nil {
		panic(err)
	}
	defer key.Wipe()

	// Printing the wrapper never reveals the secret.
	fmt.Println(key)

	// Access requires an explicit exposure.
	fmt.Println(shroud.EncodeHex(key.Expose()))
	// Output:
	// [REDACTED]
	// deadbeef
}

func ExampleGuard() {
	secret := shroud.DynamicFromString("s3cret")

	err := shroud.Guard(secret, func(s *shroud.Dynamic) error {
		fmt.Println(len(s.Expose()))
		return nil
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(secret.Expose()[0])
	// Output:
	// 6
	// 0
}

func ExampleNewHexString() {
	hx, err := shroud.NewHexString("DEADBEEF")
	if err != nil {
		panic(err)
	}
	defer hx.Wipe()

	// Mixed case is normalized to lowercase.
	fmt.Println(string(hx.Expose()))
	fmt.Println(hx.ByteLen())
	// Output:
	// deadbeef
	// 4
}

func ExampleConstantTimeEqual() {
	fmt.Println(shroud.ConstantTimeEqual([]byte("token"), []byte("token")))
	fmt.Println(shroud.ConstantTimeEqual([]byte("token"), []byte("other")))
	// Output:
	// true
	// false
}
