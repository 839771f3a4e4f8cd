// Package scaffold turns an approved field plan into the three artifacts an
// ACF block needs: the field-group JSON descriptor, the block.json manifest,
// and a PHP render-template stub. Generated descriptors are run through the
// validator before they are handed back, so scaffolding can never emit
// artifacts the validate command would reject.
package scaffold
