package carbsys_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCarbsys(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Carbsys Suite")
}
