package ariatree

import "golang.org/x/net/html"

// findShadowTemplate looks for the `<template data-shadowroot>` convention
// this bridge uses to stand in for a real attachShadow() call — there is no
// shadow DOM in a parsed static document, so a fixture opts into one
// explicitly by nesting its shadow content inside such a template.
func findShadowTemplate(host *html.Node) *html.Node {
	for c := host.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "template" {
			if _, ok := attrVal(c, "data-shadowroot"); ok {
				return c
			}
		}
	}
	return nil
}

// visitShadowChildren walks a shadow root's content, resolving each <slot>
// to the light-DOM children of host that declare a matching slot="..."
// attribute (or, for the default/unnamed slot, the light-DOM children with
// no slot attribute at all).
func (b *builder) visitShadowChildren(shadowTemplate, host *html.Node, parent *AriaNode) {
	for c := shadowTemplate.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "slot" {
			name := attrValOr(c, "name", "")
			assigned := assignedNodesForSlot(host, name)
			if len(assigned) == 0 {
				for sc := c.FirstChild; sc != nil; sc = sc.NextSibling {
					b.visitWithSpacing(sc, parent)
				}
				continue
			}
			for _, a := range assigned {
				b.visitWithSpacing(a, parent)
			}
			continue
		}
		b.visitWithSpacing(c, parent)
	}
}

func assignedNodesForSlot(host *html.Node, slotName string) []*html.Node {
	var out []*html.Node
	for c := host.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.Data == "template" {
			if _, ok := attrVal(c, "data-shadowroot"); ok {
				continue
			}
		}
		slot, has := attrVal(c, "slot")
		if slotName == "" {
			if !has || slot == "" {
				out = append(out, c)
			}
		} else if has && slot == slotName {
			out = append(out, c)
		}
	}
	return out
}
