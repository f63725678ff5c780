/*
 * MIT License
 *
 * Copyright (c) 2020-2026 Pelican Engine Contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRejectsOutOfRangeValues(t *testing.T) {
	assert.True(t, Value(0).IsValid())
	assert.False(t, ValueInf.IsValid())
	assert.False(t, (-ValueInf).IsValid())
}

func TestIsMateValueThreshold(t *testing.T) {
	assert.False(t, Value(900).IsMateValue())
	assert.True(t, ValueMateThreshold.IsMateValue())
	assert.True(t, (-ValueMateThreshold).IsMateValue())
}

func TestMatePliesForPositiveAndNegativeMate(t *testing.T) {
	v := ValueMate - Value(5)
	assert.Equal(t, 5, v.MatePlies())
	neg := -ValueMate + Value(5)
	assert.Equal(t, 5, neg.MatePlies())
}

func TestValueStringFormatsMateAndCentipawns(t *testing.T) {
	assert.Equal(t, "cp 150", Value(150).String())
	mateInOne := ValueMate - Value(1)
	assert.Equal(t, "mate 1", mateInOne.String())
	mateInOneForBlack := -ValueMate + Value(1)
	assert.Equal(t, "mate -1", mateInOneForBlack.String())
	assert.Equal(t, "n/a", ValueNA.String())
}

func TestDirectionStringRendersCompassLetters(t *testing.T) {
	assert.Equal(t, "N", North.String())
	assert.Equal(t, "SW", Southwest.String())
}
