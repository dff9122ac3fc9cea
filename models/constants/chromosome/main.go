package chromosome

import (
	"fmt"
	"strconv"
	"strings"

	"pvv/api/utils"
)

func ValidListOfHumanChromosomes() []string {
	var humChroms []string
	for i := 1; i < 24; i++ {
		humChroms = append(humChroms, fmt.Sprint(i))
	}
	humChroms = append(humChroms, "X")
	humChroms = append(humChroms, "Y")
	humChroms = append(humChroms, "M")
	humChroms = append(humChroms, "MT")
	return humChroms
}

func IsValidHumanChromosome(text string) bool {
	// Check if number can be represented as an int and is non-zero
	chromNumber, _ := strconv.Atoi(text)
	if chromNumber > 0 {
		// It can..
		// Check if it's in range 1-23
		return chromNumber < 24
	}

	// No it can't..
	// Check if it is an X, Y, M or MT
	return utils.StringInSlice(strings.ToUpper(text), []string{"X", "Y", "M", "MT"})
}
