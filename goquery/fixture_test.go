package goquery_test

// Parameter tables as served by the reference site.

const escStarFormat = `<div xmlns="" class="Header2">
<h2 class="Head-C" id="QAccess1">[Format]</h2>
<div class="indent">
<div>
<table class="parameter">
<tbody>
<tr>
<td style="text-align:left;">
  <div>
    <div>ASCII</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>ESC</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>*</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">m</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">nL</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">nH</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">d1 ... dk</font></div>
  </div>
</td>
</tr>
<tr>
<td style="text-align:left;">
  <div>
    <div>Hex</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>1B</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>2A</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">m</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">nL</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">nH</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">d1 ... dk</font></div>
  </div>
</td>
</tr>
<tr>
<td style="text-align:left;">
  <div>
    <div>Decimal</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>27</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>42</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">m</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">nL</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">nH</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">d1 ... dk</font></div>
  </div>
</td>
</tr>
</tbody>
</table>
</div>
</div>
</div>`

// gsVFormat has four sub-functions with the row label in the third column.
const gsVFormat = `<div xmlns="" class="Header2">
<h2 class="Head-C" id="QAccess1">[Format]</h2>
<div class="indent">
<div>
<table class="parameter">
<tbody>
<tr>
<td style="">
  <div>
    <div>&lt;Function A&gt;</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;&nbsp;</div>
  </div>
</td>
<td style="text-align:left;">
  <div>
    <div>ASCII</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>GS</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>V</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">m</font></div>
  </div>
</td>
<td style=""></td>
<td style=""></td>
</tr>
<tr>
<td style="text-align:left;"></td>
<td style=""></td>
<td style="text-align:left;">
  <div>
    <div>Hex</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>1D</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>56</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">m</font></div>
  </div>
</td>
<td style=""></td>
<td style=""></td>
</tr>
<tr>
<td style="text-align:left;"></td>
<td style=""></td>
<td style="text-align:left;">
  <div>
    <div>Decimal</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>29</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>86</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">m</font></div>
  </div>
</td>
<td style=""></td>
<td style=""></td>
</tr>
<tr>
<td style="">
  <div>
    <div>&lt;Function B&gt;</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;&nbsp;</div>
  </div>
</td>
<td style="text-align:left;">
  <div>
    <div>ASCII</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>GS</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>V</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">m</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">n</font></div>
  </div>
</td>
</tr>
<tr>
<td style="text-align:left;"></td>
<td style=""></td>
<td style="text-align:left;">
  <div>
    <div>Hex</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>1D</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>56</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">m</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">n</font></div>
  </div>
</td>
</tr>
<tr>
<td style="text-align:left;"></td>
<td style=""></td>
<td style="text-align:left;">
  <div>
    <div>Decimal</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>29</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>86</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">m</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">n</font></div>
  </div>
</td>
</tr>
<tr>
<td style="">
  <div>
    <div>&lt;Function C&gt;</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;&nbsp;</div>
  </div>
</td>
<td style="text-align:left;">
  <div>
    <div>ASCII</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>GS</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>V</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">m</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">n</font></div>
  </div>
</td>
</tr>
<tr>
<td style="text-align:left;"></td>
<td style=""></td>
<td style="text-align:left;">
  <div>
    <div>Hex</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>1D</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>56</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">m</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">n</font></div>
  </div>
</td>
</tr>
<tr>
<td style="text-align:left;"></td>
<td style=""></td>
<td style="text-align:left;">
  <div>
    <div>Decimal</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>29</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>86</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">m</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">n</font></div>
  </div>
</td>
</tr>
<tr>
<td style="">
  <div>
    <div>&lt;Function D&gt;</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;&nbsp;</div>
  </div>
</td>
<td style="text-align:left;">
  <div>
    <div>ASCII</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>GS</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>V</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">m</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">n</font></div>
  </div>
</td>
</tr>
<tr>
<td style="text-align:left;"></td>
<td style=""></td>
<td style="text-align:left;">
  <div>
    <div>Hex</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>1D</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>56</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">m</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">n</font></div>
  </div>
</td>
</tr>
<tr>
<td style="text-align:left;"></td>
<td style=""></td>
<td style="text-align:left;">
  <div>
    <div>Decimal</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>29</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>86</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">m</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">n</font></div>
  </div>
</td>
</tr>
</tbody>
</table>
</div>
</div>
</div>`

// gsLparenEFn51Format interleaves JSON payload examples between the notation rows.
const gsLparenEFn51Format = `<div xmlns="" class="Header2">
<h2 class="Head-C" id="QAccess1">[Format]</h2>
<div class="indent">
<div>
<table class="parameter">
<tbody>
<tr>
<td style="text-align:left;">
  <div>
    <div>ASCII</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>GS</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>(</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>E</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">pL</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">pH</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">fn</font></div>
  </div>
</td>
</tr>
<tr>
<td style="text-align:left;">
  <div>
    <div></div>
  </div>
</td>
<td style="">
  <div>
    <div>{"Media.str":{"Item1.str":"Value1.str"[,"Itemk.str":"Valuek.str"]}}</div>
  </div>
</td>
</tr>
<tr>
<td style="text-align:left;">
  <div>
    <div>Hex</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>1D</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>28</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>45</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">pL</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">pH</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="fix_param">33</font></div>
  </div>
</td>
</tr>
<tr>
<td style="text-align:left;">
  <div>
    <div></div>
  </div>
</td>
<td style="">
  <div>
    <div>{"Media.str":{"Item1.str":"Value1.str"[,"Itemk.str":"Valuek.str"]}}</div>
  </div>
</td>
</tr>
<tr>
<td style="text-align:left;">
  <div>
    <div>Decimal</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>29</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>40</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div>69</div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">pL</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="parameter">pH</font></div>
  </div>
</td>
<td style=""></td>
<td style="">
  <div>
    <div><font class="fix_param">51</font></div>
  </div>
</td>
</tr>
<tr>
<td style="text-align:left;">
  <div>
    <div></div>
  </div>
</td>
<td style="">
  <div>
    <div>{"Media.str":{"Item1.str":"Value1.str"[,"Itemk.str":"Valuek.str"]}}</div>
  </div>
</td>
</tr>
</tbody>
</table>
</div>
</div>
</div>`

const gsLparenKFormat = `<div xmlns="" class="Header2">
<h2 class="Head-C" id="QAccess1">[Format]</h2>
<div class="indent">
<div>
<table class="parameter">
<tbody>
<tr>
<td style="text-align:left;">
  <div>
    <div>ASCII</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>GS</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>(</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>k</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">pL</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">pH</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">cn</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">fn</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">[parameters]</font></div>
  </div>
</td>
</tr>
<tr>
<td style="text-align:left;">
  <div>
    <div>Hex</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>1D</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>28</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>6B</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">pL</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">pH</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">cn</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">fn</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">[parameters]</font></div>
  </div>
</td>
</tr>
<tr>
<td style="text-align:left;">
  <div>
    <div>Decimal</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>29</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>40</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div>107</div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">pL</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">pH</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">cn</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">fn</font></div>
  </div>
</td>
<td style="">
  <div>
    <div>&nbsp;&nbsp;</div>
  </div>
</td>
<td style="">
  <div>
    <div><font class="parameter">[parameters]</font></div>
  </div>
</td>
</tr>
</tbody>
</table>
</div>
</div>
</div>`
