package views

import "github.com/thakoorchandan/navswara-go/models"

// Related selects catalog products sharing at least one tag with the
// reference product, excluding the reference itself. A reference with
// no tags, or an empty catalog, yields an empty result.
func Related(products []models.Product, ref models.Product) []models.Product {
	if len(ref.Tags) == 0 {
		return nil
	}
	var out []models.Product
	for _, p := range products {
		if p.ID == ref.ID {
			continue
		}
		if anyTag(p, ref.Tags) {
			out = append(out, p)
		}
	}
	return out
}

// Latest returns up to n non-bestseller products in catalog order, the
// home page's "latest collection" strip.
func Latest(products []models.Product, n int) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.BestSeller {
			continue
		}
		out = append(out, p)
		if len(out) == n {
			break
		}
	}
	return out
}

// Bestsellers returns up to n products flagged as bestsellers.
func Bestsellers(products []models.Product, n int) []models.Product {
	var out []models.Product
	for _, p := range products {
		if !p.BestSeller {
			continue
		}
		out = append(out, p)
		if len(out) == n {
			break
		}
	}
	return out
}

// Options lists the distinct non-empty values of one product attribute,
// in first-seen order; the collection sidebar builds its checkbox
// groups from these.
func Options(products []models.Product, attr func(models.Product) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		v := attr(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// TagOptions lists every distinct tag in first-seen order.
func TagOptions(products []models.Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		for _, tag := range p.Tags {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}
