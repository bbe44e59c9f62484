package cmd

import (
	"math/rand"
	"testing"

	"github.com/achilleasa/go-raytrace/asset/compiler/bvh"
	"github.com/achilleasa/go-raytrace/asset/scene"
	core "github.com/achilleasa/go-raytrace/scene"
)

func TestRandomRaysAreReproducible(t *testing.T) {
	s1, d1 := randomRays(64, 3)
	s2, d2 := randomRays(64, 3)
	for index := range s1 {
		if s1[index] != s2[index] || d1[index] != d2[index] {
			t.Fatalf("expected ray %d to be reproducible", index)
		}
	}
}

func TestCountMismatches(t *testing.T) {
	sc := scene.Random(rand.New(rand.NewSource(1)))
	objects := sc.Objects.Take()
	list := core.NewList(objects...)
	tree := bvh.FromObjects(objects)

	if mismatches := countMismatches(list, tree, 2000, 9); mismatches != 0 {
		t.Fatalf("expected list and bvh to agree; got %d mismatches", mismatches)
	}

	// Dropping the ground sphere from the list must be detected.
	ground := len(objects) - 4
	partial := core.NewList(append(objects[:ground:ground], objects[ground+1:]...)...)
	if mismatches := countMismatches(partial, tree, 2000, 9); mismatches == 0 {
		t.Fatal("expected mismatches after removing the ground sphere")
	}
}

func TestLoadScene(t *testing.T) {
	sc, err := loadScene(randomSceneName, 5)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Objects.Len() == 0 {
		t.Fatal("expected random scene to contain objects")
	}

	if _, err = loadScene("missing.scene", 5); err == nil {
		t.Fatal("expected an error when loading a missing scene file")
	}
}
