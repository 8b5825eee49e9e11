// Package seed loads farms and products from a YAML document.
package seed

import (
	"context"
	"fmt"
	"io"

	"github.com/h4ks-com/farmstand/internal/services"
	"gopkg.in/yaml.v3"
)

type File struct {
	Farms    []Farm    `yaml:"farms"`
	Products []Product `yaml:"products"`
}

type Farm struct {
	Name     string    `yaml:"name"`
	City     string    `yaml:"city"`
	Email    string    `yaml:"email"`
	Products []Product `yaml:"products"`
}

type Product struct {
	Name     string  `yaml:"name"`
	Price    float64 `yaml:"price"`
	Category string  `yaml:"category"`
}

type Result struct {
	Farms    int
	Products int
	Skipped  []error
}

func Parse(r io.Reader) (*File, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return &file, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &file, nil
}

// Apply creates everything in file through the services so the usual
// validation applies. With strict set the first failure stops the run;
// otherwise failures are collected in Result.Skipped.
func Apply(ctx context.Context, file *File, farmService *services.FarmService, productService *services.ProductService, strict bool) (*Result, error) {
	result := &Result{}

	fail := func(err error) error {
		if strict {
			return err
		}
		result.Skipped = append(result.Skipped, err)
		return nil
	}

	for _, f := range file.Farms {
		farm, err := farmService.CreateFarm(ctx, services.FarmInput{Name: f.Name, City: f.City, Email: f.Email})
		if err != nil {
			if err := fail(fmt.Errorf("farm %q: %w", f.Name, err)); err != nil {
				return result, err
			}
			continue
		}
		result.Farms++

		for _, p := range f.Products {
			_, err := farmService.AddProduct(ctx, farm.ID, services.ProductInput{Name: p.Name, Price: p.Price, Category: p.Category})
			if err != nil {
				if err := fail(fmt.Errorf("farm %q product %q: %w", f.Name, p.Name, err)); err != nil {
					return result, err
				}
				continue
			}
			result.Products++
		}
	}

	for _, p := range file.Products {
		_, err := productService.CreateProduct(ctx, services.ProductInput{Name: p.Name, Price: p.Price, Category: p.Category})
		if err != nil {
			if err := fail(fmt.Errorf("product %q: %w", p.Name, err)); err != nil {
				return result, err
			}
			continue
		}
		result.Products++
	}

	return result, nil
}
